package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	httpctrl "github.com/surgeguard-io/surgeguard/pkg/controller/http"
	"github.com/surgeguard-io/surgeguard/pkg/domain/model"
	"github.com/surgeguard-io/surgeguard/pkg/domain/types"
	"github.com/surgeguard-io/surgeguard/pkg/repository/memory"
	"github.com/surgeguard-io/surgeguard/pkg/service/dataset"
	"github.com/surgeguard-io/surgeguard/pkg/usecase"
)

func newTestServer(t *testing.T) *httpctrl.Server {
	t.Helper()

	repo := memory.New()
	uc := usecase.New(repo)

	loader := dataset.New()
	actions, err := loader.Actions(context.Background())
	gt.NoError(t, err).Required()
	gt.NoError(t, uc.Action.Seed(context.Background(), actions)).Required()

	return httpctrl.New(uc)
}

func doJSON(t *testing.T, server *httpctrl.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		gt.NoError(t, err).Required()
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/health", nil)
	gt.Number(t, rec.Code).Equal(http.StatusOK)

	var body map[string]string
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)).Required()
	gt.Value(t, body["status"]).Equal("ok")
}

func TestDashboardEndpoints(t *testing.T) {
	server := newTestServer(t)

	t.Run("GET /api/dashboard/kpi", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/dashboard/kpi", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var metrics model.KPIMetrics
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &metrics)).Required()
		gt.Number(t, metrics.TotalPatients).Equal(727)
	})

	t.Run("GET /api/hospitals", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/hospitals", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var nodes []*model.HospitalNode
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nodes)).Required()
		gt.Array(t, nodes).Length(4)
	})
}

func TestActionEndpoints(t *testing.T) {
	t.Run("GET /api/actions/pending lists seeded actions", func(t *testing.T) {
		server := newTestServer(t)

		rec := doJSON(t, server, http.MethodGet, "/api/actions/pending", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var items []*model.ActionItem
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items)).Required()
		gt.Array(t, items).Length(3)
	})

	t.Run("POST approve returns the approved item", func(t *testing.T) {
		server := newTestServer(t)

		rec := doJSON(t, server, http.MethodPost, "/api/actions/act-001/approve", map[string]string{
			"message_override": "All off-duty ICU staff report by 20:00.",
		})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var item model.ActionItem
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item)).Required()
		gt.Value(t, item.ID).Equal("act-001")
		gt.Value(t, item.Status).Equal(types.ActionStatusApproved)
		gt.Value(t, item.MessageFinal).NotNil()
		gt.Value(t, *item.MessageFinal).Equal("All off-duty ICU staff report by 20:00.")
	})

	t.Run("POST approve without body uses the template", func(t *testing.T) {
		server := newTestServer(t)

		rec := doJSON(t, server, http.MethodPost, "/api/actions/act-002/approve", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var item model.ActionItem
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item)).Required()
		gt.Value(t, item.MessageFinal).NotNil()
		gt.Value(t, *item.MessageFinal).Equal(item.MessageTemplate)
	})

	t.Run("POST approve on unknown action returns 404", func(t *testing.T) {
		server := newTestServer(t)

		rec := doJSON(t, server, http.MethodPost, "/api/actions/act-999/approve", nil)
		gt.Number(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("POST approve twice returns 409", func(t *testing.T) {
		server := newTestServer(t)

		rec := doJSON(t, server, http.MethodPost, "/api/actions/act-001/approve", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		rec = doJSON(t, server, http.MethodPost, "/api/actions/act-001/approve", nil)
		gt.Number(t, rec.Code).Equal(http.StatusConflict)
	})

	t.Run("POST reject returns the rejected item", func(t *testing.T) {
		server := newTestServer(t)

		rec := doJSON(t, server, http.MethodPost, "/api/actions/act-003/reject", map[string]string{
			"reason": "advisory superseded",
		})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var item model.ActionItem
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item)).Required()
		gt.Value(t, item.Status).Equal(types.ActionStatusRejected)
		gt.Value(t, item.MessageFinal).Nil()
	})

	t.Run("POST reject on unknown action returns 404", func(t *testing.T) {
		server := newTestServer(t)

		rec := doJSON(t, server, http.MethodPost, "/api/actions/act-999/reject", nil)
		gt.Number(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("malformed JSON body returns 400", func(t *testing.T) {
		server := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/api/actions/act-001/approve", bytes.NewReader([]byte(`{"message_override": `)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)

		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("approved action disappears from the pending list", func(t *testing.T) {
		server := newTestServer(t)

		rec := doJSON(t, server, http.MethodPost, "/api/actions/act-001/approve", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		rec = doJSON(t, server, http.MethodGet, "/api/actions/pending", nil)
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var items []*model.ActionItem
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items)).Required()
		gt.Array(t, items).Length(2)
		for _, item := range items {
			gt.Value(t, item.ID).NotEqual("act-001")
		}
	})
}

func TestAdvisoryEndpoint(t *testing.T) {
	t.Run("POST generate returns a mock draft", func(t *testing.T) {
		server := newTestServer(t)

		rec := doJSON(t, server, http.MethodPost, "/api/advisory/generate", map[string]any{
			"prompt":  "Festival surge expected in Ward X",
			"context": map[string]any{"ward": "X"},
		})
		gt.Number(t, rec.Code).Equal(http.StatusOK)

		var body struct {
			Draft string `json:"draft"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)).Required()
		gt.Value(t, body.Draft).Equal("[MOCK DRAFT] Festival surge expected in Ward X")
	})

	t.Run("POST generate with empty prompt returns 400", func(t *testing.T) {
		server := newTestServer(t)

		rec := doJSON(t, server, http.MethodPost, "/api/advisory/generate", map[string]any{
			"prompt": "",
		})
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("POST generate without body returns 400", func(t *testing.T) {
		server := newTestServer(t)

		rec := doJSON(t, server, http.MethodPost, "/api/advisory/generate", nil)
		gt.Number(t, rec.Code).Equal(http.StatusBadRequest)
	})
}
