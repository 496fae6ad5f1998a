package public

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"finitefield.org/dashpro-admin/internal/admin/ui"
)

func TestHandlerServesReferencedAssets(t *testing.T) {
	t.Parallel()

	h, err := Handler()
	require.NoError(t, err)

	for _, path := range []string{StylesheetPath, ScriptPath, GalleryImagePath} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rr.Code, path)
		require.NotEmpty(t, rr.Body.Bytes(), path)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, Prefix+"js/missing.js", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStylesheetMatchesConsoleBehaviour(t *testing.T) {
	t.Parallel()

	css, err := assets.ReadFile("static/css/dashpro.css")
	require.NoError(t, err)
	sheet := string(css)

	require.Contains(t, sheet, fmt.Sprintf("@media (max-width: %dpx)", ui.DefaultSidebarBreakpoint))
	for _, kind := range []ui.ToastKind{ui.ToastSuccess, ui.ToastError, ui.ToastInfo, ui.ToastWarning} {
		require.True(t, strings.Contains(sheet, ".toast."+string(kind)+" {"), "no rule for %s toasts", kind)
	}
}
