// Package theme applies the console's primary colour to a live document.
package theme

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"finitefield.org/dashpro-admin/internal/admin/dom"
)

// DarkShade is how far --primary-dark is pulled towards black.
const DarkShade = 0.15

// ErrInvalidColor is returned for values that are not #RRGGBB.
var ErrInvalidColor = errors.New("theme: colour must be #RRGGBB")

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate trims value and checks it is a #RRGGBB colour. Case is preserved.
func Validate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if !hexColor.MatchString(value) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	return value, nil
}

// Darken moves each channel of hex towards black by percent (0..1).
func Darken(hex string, percent float64) (string, error) {
	hex, err := Validate(hex)
	if err != nil {
		return "", err
	}
	percent = math.Max(0, math.Min(1, percent))

	rgb, _ := strconv.ParseUint(hex[1:], 16, 32)
	channels := [3]uint64{rgb >> 16, (rgb >> 8) & 0xff, rgb & 0xff}
	for i, c := range channels {
		v := float64(c)
		channels[i] = uint64(math.Floor(v - v*percent + 0.5))
	}
	return fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2]), nil
}

// Apply sets --primary and --primary-dark on the root element and syncs
// the colour picker controls.
func Apply(doc *goquery.Document, color string) error {
	color, err := Validate(color)
	if err != nil {
		return err
	}
	dark, err := Darken(color, DarkShade)
	if err != nil {
		return err
	}

	root := doc.Find("html").First()
	dom.SetStyle(root, "--primary", color)
	dom.SetStyle(root, "--primary-dark", dark)

	doc.Find(".color-dot").Each(func(_ int, dot *goquery.Selection) {
		if dot.AttrOr("id", "") == "customPrimaryColorInput" {
			return
		}
		if strings.EqualFold(dot.AttrOr("data-color", ""), color) {
			dot.AddClass("active")
		} else {
			dot.RemoveClass("active")
		}
	})

	if custom := dom.ByID(doc.Selection, "customPrimaryColorInput"); custom.Length() > 0 {
		dom.SetValue(custom, color)
		custom.AddClass("active")
	}
	return nil
}

// Current reads the primary colour applied to doc, if any.
func Current(doc *goquery.Document) string {
	return dom.Style(doc.Find("html").First(), "--primary")
}
