package controllerImp

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"farmai/entities"
	"farmai/pkg/ai"
	"farmai/pkg/diagnose/serviceImp"
	"farmai/pkg/farm"
	farmRepo "farmai/pkg/farm/repositoryImp"
)

func newCtrl() *DiagnoseCtrl {
	r := farmRepo.NewMemory(farm.Seed(time.Now()))
	llm := ai.NewMock(ai.WithDelay(0), ai.WithRand(rand.New(rand.NewPCG(5, 5))))
	return New(serviceImp.New(r, llm, zap.NewNop()), zap.NewNop()).(*DiagnoseCtrl)
}

func post(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/diagnoses", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(echo.New().NewContext(req, rec)))
	return rec
}

func TestCreate_ReturnsDiagnosis(t *testing.T) {
	h := newCtrl()
	rec := post(t, h.Create, `{"plot_id":"1","image_uri":"mem://images/x"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var d entities.Diagnosis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.Equal(t, "1", d.PlotID)
	assert.True(t, d.Valid())
	assert.True(t, strings.HasPrefix(d.ID, "diag_"))

	rec = httptest.NewRecorder()
	require.NoError(t, h.List(echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/diagnoses", nil), rec)))
	var list []entities.Diagnosis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, d.ID, list[0].ID)
}

func TestCreate_MissingInput(t *testing.T) {
	rec := post(t, newCtrl().Create, `{"plot_id":"1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Selecciona una foto y un lote")
}

func TestExport_ContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/diagnoses/export.xlsx", nil), rec)
	require.NoError(t, newCtrl().Export(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxMIME, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "diagnosticos.xlsx")
	assert.NotZero(t, rec.Body.Len())
}
