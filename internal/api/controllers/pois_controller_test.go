package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gps/internal/models/response_models"
	"gps/pkg/utils"
)

type searchCall struct {
	x, y, dmax float64
}

type fakePOIService struct {
	insertErr error
	listErr   error
	searchErr error
	pois      []response_models.POI

	inserted []response_models.POI
	searches []searchCall
}

func (f *fakePOIService) InsertPOI(_ context.Context, name string, x, y float64) (uuid.UUID, error) {
	if f.insertErr != nil {
		return uuid.Nil, f.insertErr
	}
	f.inserted = append(f.inserted, response_models.POI{Name: name, X: x, Y: y})
	return uuid.MustParse("0190b7a0-0000-7000-8000-000000000001"), nil
}

func (f *fakePOIService) GetAllPOIs(context.Context) ([]response_models.POI, error) {
	return f.pois, f.listErr
}

func (f *fakePOIService) GetPOIsInRange(_ context.Context, x, y, dmax float64) ([]response_models.POI, error) {
	f.searches = append(f.searches, searchCall{x, y, dmax})
	return f.pois, f.searchErr
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func serve(t *testing.T, svc *fakePOIService, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := NewPOIsController(svc, zap.NewNop())
	r := gin.New()
	r.POST("/insert", ctrl.InsertPoi)
	r.GET("/get-all", ctrl.GetAllPois)
	r.GET("/search", ctrl.SearchPois)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, env
}

func TestInsertPoi(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		insertErr error
		want      int
	}{
		{"accepted", `{"name":"Pub","x":12,"y":8}`, nil, http.StatusAccepted},
		{"missing x", `{"name":"Pub","y":8}`, nil, http.StatusBadRequest},
		{"missing name", `{"x":12,"y":8}`, nil, http.StatusBadRequest},
		{"malformed json", `{"name":`, nil, http.StatusBadRequest},
		{"invalid coordinate", `{"name":"Joalheria","x":-1,"y":12}`, utils.ErrInvalidCoordinate, http.StatusBadRequest},
		{"coordinate conflict", `{"name":"Bar","x":12,"y":8}`, utils.ErrCoordinateTaken, http.StatusConflict},
		{"name conflict", `{"name":"Pub","x":1,"y":1}`, utils.ErrNameTaken, http.StatusConflict},
		{"store failure", `{"name":"Pub","x":1,"y":1}`, utils.ErrDatabaseError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakePOIService{insertErr: tt.insertErr}
			w, env := serve(t, svc, http.MethodPost, "/insert", tt.body)
			if w.Code != tt.want || env.Code != tt.want {
				t.Fatalf("status = %d (envelope %d), want %d; body %s", w.Code, env.Code, tt.want, w.Body.String())
			}
			if tt.want == http.StatusAccepted {
				var created response_models.CreatedPOI
				if err := json.Unmarshal(env.Data, &created); err != nil || created.ID == "" {
					t.Errorf("created id missing from %s", env.Data)
				}
				if len(svc.inserted) != 1 || svc.inserted[0] != (response_models.POI{Name: "Pub", X: 12, Y: 8}) {
					t.Errorf("service received %+v", svc.inserted)
				}
			}
		})
	}
}

func TestInsertPoi_ZeroCoordinateReachesService(t *testing.T) {
	svc := &fakePOIService{insertErr: utils.ErrInvalidCoordinate}
	w, _ := serve(t, svc, http.MethodPost, "/insert", `{"name":"Zero","x":0,"y":12}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetAllPois(t *testing.T) {
	svc := &fakePOIService{pois: []response_models.POI{{Name: "Lanchonete", X: 27, Y: 12}}}
	w, env := serve(t, svc, http.MethodGet, "/get-all", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var pois []response_models.POI
	if err := json.Unmarshal(env.Data, &pois); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(pois) != 1 || pois[0] != (response_models.POI{Name: "Lanchonete", X: 27, Y: 12}) {
		t.Errorf("data = %+v", pois)
	}

	svc = &fakePOIService{listErr: utils.ErrPOINotFound}
	w, env = serve(t, svc, http.MethodGet, "/get-all", "")
	if w.Code != http.StatusNotFound || env.Status != "error" {
		t.Errorf("empty store: status = %d (%s), want 404 error", w.Code, env.Status)
	}
}

func TestSearchPois(t *testing.T) {
	svc := &fakePOIService{pois: []response_models.POI{{Name: "Pub", X: 12, Y: 8}}}
	w, env := serve(t, svc, http.MethodGet, "/search", `{"x":12,"y":8,"dmax":0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("JSON body search status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if len(svc.searches) != 1 || svc.searches[0] != (searchCall{12, 8, 0}) {
		t.Errorf("service received %+v, want [{12 8 0}]", svc.searches)
	}
	var pois []response_models.POI
	if err := json.Unmarshal(env.Data, &pois); err != nil || len(pois) != 1 || pois[0].Name != "Pub" {
		t.Errorf("data = %s", env.Data)
	}

	w, _ = serve(t, svc, http.MethodGet, "/search?x=28&y=13&dmax=3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("query search status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if last := svc.searches[len(svc.searches)-1]; last != (searchCall{28, 13, 3}) {
		t.Errorf("service received %+v, want {28 13 3}", last)
	}
}

func TestSearchPois_EmptyResultIsArray(t *testing.T) {
	svc := &fakePOIService{pois: []response_models.POI{}}
	w, env := serve(t, svc, http.MethodGet, "/search?x=1&y=1&dmax=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if string(env.Data) != "[]" {
		t.Errorf("data = %s, want []", env.Data)
	}
}

func TestSearchPois_Errors(t *testing.T) {
	tests := []struct {
		name, target, body string
		searchErr          error
		want               int
	}{
		{"missing dmax", "/search", `{"x":1,"y":1}`, nil, http.StatusBadRequest},
		{"no input at all", "/search", "", nil, http.StatusBadRequest},
		{"bad query number", "/search?x=a&y=1&dmax=1", "", nil, http.StatusBadRequest},
		{"negative radius", "/search?x=1&y=1&dmax=-1", "", utils.ErrInvalidRadius, http.StatusBadRequest},
		{"empty store", "/search?x=1&y=1&dmax=1", "", utils.ErrPOINotFound, http.StatusNotFound},
		{"store failure", "/search?x=1&y=1&dmax=1", "", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakePOIService{searchErr: tt.searchErr}
			w, _ := serve(t, svc, http.MethodGet, tt.target, tt.body)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d; body %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, tt := range []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{errors.New("down"), http.StatusServiceUnavailable},
	} {
		err := tt.err
		h := NewHealthController(func(context.Context) error { return err }, zap.NewNop())
		r := gin.New()
		r.GET("/healthz", h.Health)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		if w.Code != tt.want {
			t.Errorf("ping err %v: status = %d, want %d", tt.err, w.Code, tt.want)
		}
	}
}
