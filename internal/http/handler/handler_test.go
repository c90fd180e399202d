package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"docrisk/internal/model"
	"docrisk/internal/risk"
	"docrisk/internal/service"
	serviceMocks "docrisk/internal/service/mocks"
	"docrisk/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var res errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "docrisk_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	app := fiber.New()
	app.Get("/metrics", Metrics(reg))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "docrisk_test_total 1")
}

func TestListClients(t *testing.T) {
	mockSvc := new(serviceMocks.MockClientService)
	app := fiber.New()
	app.Get("/clients", ListClients(mockSvc))

	t.Run("success", func(t *testing.T) {
		expected := &service.ClientListResult{
			Items: []service.ClientListItem{{
				CorporateClient: model.CorporateClient{ID: uuid.New().String(), Name: "Acme"},
				Risk:            risk.Summary{Score: 5, ScoreLevel: risk.LevelMedium, EffectiveLevel: risk.LevelHigh, ExpiredCount: 1},
			}},
			Total: 1,
		}
		mockSvc.On("List", mock.Anything, 10, 0).Return(expected, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/clients?limit=10&offset=0", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Data []struct {
				Name string       `json:"name"`
				Risk risk.Summary `json:"risk"`
			} `json:"data"`
			Total int `json:"total"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		require.Len(t, result.Data, 1)
		assert.Equal(t, "Acme", result.Data[0].Name)
		assert.Equal(t, risk.LevelHigh, result.Data[0].Risk.EffectiveLevel)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/clients?limit=abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid offset", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/clients?offset=x", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_OFFSET", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 10, 0).Return(nil, errors.New("service error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/clients", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestCreateClient(t *testing.T) {
	mockSvc := new(serviceMocks.MockClientService)
	app := fiber.New()
	app.Post("/clients", CreateClient(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, "Acme").
			Return(&model.CorporateClient{ID: "c1", Name: "Acme"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/clients", `{"name":"Acme"}`))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation failure", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/clients", `{"name":""}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_FAILED", res.Error.Code)
		assert.NotEmpty(t, res.Error.Details)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/clients", `{"name":`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	t.Run("service rejects blank name", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, "   ").
			Return(nil, errors.Join(service.ErrInvalidInput, errors.New("name is required"))).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/clients", `{"name":"   "}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, resp).Error.Code)
	})
}

func TestGetClientReport(t *testing.T) {
	mockSvc := new(serviceMocks.MockRiskService)
	app := fiber.New()
	app.Get("/clients/:id", GetClientReport(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		report := &service.ClientReport{
			Client: model.CorporateClient{ID: id, Name: "Acme"},
			Report: risk.Report{
				Summary: risk.Summary{Score: 3, MissingCount: 1, EffectiveLevel: risk.LevelMedium},
				Requirements: []risk.RequirementStatus{
					{RequirementID: "r1", Status: risk.StatusMissing, Reason: risk.ReasonNoUpload, Required: true},
				},
			},
		}
		mockSvc.On("ClientReport", mock.Anything, id).Return(report, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/clients/"+id, nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body, "client")
		assert.Contains(t, body, "summary")
		assert.Contains(t, body, "requirements")
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("ClientReport", mock.Anything, id).Return(nil, service.ErrClientNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/clients/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
		assert.Equal(t, "corporate client not found", res.Error.Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/clients/invalid-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})
}

func TestDeleteClient(t *testing.T) {
	mockSvc := new(serviceMocks.MockClientService)
	app := fiber.New()
	app.Delete("/clients/:id", DeleteClient(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/clients/"+id, nil))
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("service error", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(errors.New("delete error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/clients/"+id, nil))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
	mockSvc.AssertExpectations(t)
}

func TestDocumentTypes(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentTypeService)
	app := fiber.New()
	app.Get("/document-types", ListDocumentTypes(mockSvc))
	app.Post("/document-types", CreateDocumentType(mockSvc))
	app.Delete("/document-types/:id", DeleteDocumentType(mockSvc))

	t.Run("list", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return([]model.DocumentType{{ID: "dt1", Name: "NPWP"}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/document-types", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Data []model.DocumentType `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Len(t, body.Data, 1)
	})

	t.Run("create with description", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, "SIUP", mock.MatchedBy(func(d *string) bool {
			return d != nil && *d == "Business license"
		})).Return(&model.DocumentType{ID: "dt2", Name: "SIUP"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/document-types", `{"name":"SIUP","description":"Business license"}`))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("delete not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(service.ErrDocumentTypeNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/document-types/"+id, nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
	mockSvc.AssertExpectations(t)
}

func TestSetRequirement(t *testing.T) {
	mockSvc := new(serviceMocks.MockRequirementService)
	app := fiber.New()
	app.Put("/clients/:id/requirements", SetRequirement(mockSvc))
	clientID := uuid.New().String()
	typeID := uuid.New().String()

	t.Run("required defaults to true", func(t *testing.T) {
		mockSvc.On("Set", mock.Anything, clientID, typeID, true).
			Return(&model.Requirement{ID: "r1", Required: true}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/clients/"+clientID+"/requirements",
			`{"document_type_id":"`+typeID+`"}`))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("explicit optional", func(t *testing.T) {
		mockSvc.On("Set", mock.Anything, clientID, typeID, false).
			Return(&model.Requirement{ID: "r1"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/clients/"+clientID+"/requirements",
			`{"document_type_id":"`+typeID+`","required":false}`))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("document type must be a uuid", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPut, "/clients/"+clientID+"/requirements",
			`{"document_type_id":"nope"}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, resp).Error.Code)
	})
	mockSvc.AssertExpectations(t)
}

func TestCreateUpload(t *testing.T) {
	mockSvc := new(serviceMocks.MockUploadService)
	app := fiber.New()
	app.Post("/clients/:id/uploads", CreateUpload(mockSvc))
	clientID := uuid.New().String()
	typeID := uuid.New().String()
	target := "/clients/" + clientID + "/uploads"

	t.Run("multipart with file", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		writer.WriteField("document_type_id", typeID)
		writer.WriteField("expires_at", "2026-12-31")
		part, _ := writer.CreateFormFile("file", "cert.pdf")
		part.Write([]byte("hello world"))
		writer.Close()

		mockSvc.On("Upload", mock.Anything, mock.MatchedBy(func(in service.UploadInput) bool {
			return in.ClientID == clientID &&
				in.DocumentTypeID == typeID &&
				in.Filename == "cert.pdf" &&
				in.Content != nil &&
				in.Size == 11 &&
				in.ExpiresAt != nil && in.ExpiresAt.Equal(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC))
		})).Return(&model.Upload{ID: "u1", Filename: "cert.pdf"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, target, body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var result model.Upload
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "u1", result.ID)
	})

	t.Run("json metadata only", func(t *testing.T) {
		mockSvc.On("Upload", mock.Anything, mock.MatchedBy(func(in service.UploadInput) bool {
			return in.Content == nil && in.Filename == "scan.pdf" && in.ExpiresAt == nil
		})).Return(&model.Upload{ID: "u2"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, target,
			`{"document_type_id":"`+typeID+`","filename":"scan.pdf"}`))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("invalid expiry", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, target,
			`{"document_type_id":"`+typeID+`","filename":"a.pdf","expires_at":"31/12/2026"}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, resp).Error.Code)
	})

	t.Run("storage disabled", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		writer.WriteField("document_type_id", typeID)
		part, _ := writer.CreateFormFile("file", "x.pdf")
		part.Write([]byte("x"))
		writer.Close()

		mockSvc.On("Upload", mock.Anything, mock.Anything).
			Return(nil, errors.Join(errors.New("upload to storage"), storage.ErrDisabled)).Once()

		req := httptest.NewRequest(http.MethodPost, target, body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "STORAGE_DISABLED", decodeError(t, resp).Error.Code)
	})
	mockSvc.AssertExpectations(t)
}

func TestDownloadUpload(t *testing.T) {
	mockSvc := new(serviceMocks.MockUploadService)
	app := fiber.New()
	app.Get("/clients/:id/uploads/:uploadId/download", DownloadUpload(mockSvc))
	clientID := uuid.New().String()
	uploadID := uuid.New().String()
	target := "/clients/" + clientID + "/uploads/" + uploadID + "/download"

	t.Run("json url", func(t *testing.T) {
		mockSvc.On("DownloadURL", mock.Anything, clientID, uploadID).Return("https://minio/obj?sig", nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "https://minio/obj?sig", body["url"])
		assert.Equal(t, float64(900), body["expires_in"])
	})

	t.Run("redirect", func(t *testing.T) {
		mockSvc.On("DownloadURL", mock.Anything, clientID, uploadID).Return("https://minio/obj?sig", nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, target+"?redirect=true", nil))
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "https://minio/obj?sig", resp.Header.Get("Location"))
	})

	t.Run("metadata only", func(t *testing.T) {
		mockSvc.On("DownloadURL", mock.Anything, clientID, uploadID).Return("", service.ErrNoFile).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NO_FILE", decodeError(t, resp).Error.Code)
	})
	mockSvc.AssertExpectations(t)
}

func TestDashboard(t *testing.T) {
	mockSvc := new(serviceMocks.MockRiskService)
	app := fiber.New()
	app.Get("/dashboard", Dashboard(mockSvc))

	mockSvc.On("Dashboard", mock.Anything).Return(&service.Dashboard{
		Totals: service.DashboardTotals{Clients: 1, Expired: 2},
		Clients: []service.DashboardRow{{
			ClientID:  "c1",
			Name:      "Acme",
			Summary:   risk.Summary{Score: 10, ExpiredCount: 2, EffectiveLevel: risk.LevelHigh},
			TopReason: &service.Reason{Status: risk.StatusExpired, Count: 2},
		}},
	}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body service.Dashboard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Totals.Expired)
	require.Len(t, body.Clients, 1)
	assert.Equal(t, risk.StatusExpired, body.Clients[0].TopReason.Status)
}

func TestCalendar(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("defaults to sixty days from today", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockRiskService)
		app := fiber.New()
		app.Get("/calendar", Calendar(mockSvc))

		mockSvc.On("Today").Return(today).Once()
		mockSvc.On("Calendar", mock.Anything, today, today.AddDate(0, 0, 60)).
			Return(&service.Calendar{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/calendar", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("explicit window", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockRiskService)
		app := fiber.New()
		app.Get("/calendar", Calendar(mockSvc))

		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
		mockSvc.On("Calendar", mock.Anything, from, to).Return(&service.Calendar{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/calendar?from=2026-01-01&to=2026-01-31", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
		mockSvc.AssertNotCalled(t, "Today")
	})

	t.Run("bad date", func(t *testing.T) {
		app := fiber.New()
		app.Get("/calendar", Calendar(new(serviceMocks.MockRiskService)))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/calendar?from=yesterday", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_DATE", decodeError(t, resp).Error.Code)
	})

	t.Run("window rejected by service", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockRiskService)
		app := fiber.New()
		app.Get("/calendar", Calendar(mockSvc))
		mockSvc.On("Calendar", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.Join(service.ErrInvalidInput, errors.New("to must not be before from"))).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/calendar?from=2026-02-01&to=2026-01-01", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestEvaluateRisk(t *testing.T) {
	mockSvc := new(serviceMocks.MockRiskService)
	app := fiber.New()
	app.Post("/risk/evaluate", EvaluateRisk(mockSvc))

	t.Run("maps request to engine input", func(t *testing.T) {
		mockSvc.On("Evaluate", mock.Anything,
			mock.MatchedBy(func(reqs []model.Requirement) bool {
				return len(reqs) == 2 &&
					reqs[0].Required && reqs[0].DocumentType != nil && reqs[0].DocumentType.Name == "NPWP" &&
					!reqs[1].Required && reqs[1].DocumentTypeID == "" && reqs[1].DocumentType == nil
			}),
			mock.MatchedBy(func(ups []model.Upload) bool {
				return len(ups) == 1 && ups[0].ExpiresAt != nil &&
					ups[0].ExpiresAt.Equal(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
			}),
		).Return(risk.Report{Summary: risk.Summary{Score: 2}}).Once()

		body := `{
			"requirements": [
				{"id": "r1", "document_type_id": "npwp", "document_name": "NPWP"},
				{"id": "r2", "document_type_id": "", "required": false}
			],
			"uploads": [
				{"id": "u1", "document_type_id": "npwp", "expires_at": "2026-05-01"}
			]
		}`
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/risk/evaluate", body))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var report risk.Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Equal(t, 2, report.Summary.Score)
		mockSvc.AssertExpectations(t)
	})

	t.Run("upload needs a document type", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/risk/evaluate",
			`{"requirements":[],"uploads":[{"id":"u1"}]}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, resp).Error.Code)
	})
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	RegisterRoutes(app, nil, prometheus.NewRegistry(), Services{
		Clients:       new(serviceMocks.MockClientService),
		DocumentTypes: new(serviceMocks.MockDocumentTypeService),
		Requirements:  new(serviceMocks.MockRequirementService),
		Uploads:       new(serviceMocks.MockUploadService),
		Risk:          new(serviceMocks.MockRiskService),
	})

	t.Run("not found route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		// Health endpoint only allows GET
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("docs page", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	})
}
