package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/campus-scheduler/internal/application"
	httptransport "github.com/example/campus-scheduler/internal/http"
	"github.com/example/campus-scheduler/internal/testfixtures"
)

func newTestServer(t *testing.T) (http.Handler, testfixtures.Campus, *testfixtures.Store) {
	t.Helper()

	store := testfixtures.NewStore()
	campus := testfixtures.NewFixture(t, store).SeedCampus()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	clock := testfixtures.NewClock(testfixtures.ReferenceTime)

	authenticator, err := application.NewStaticAuthenticator("admin-secret", "secretary-secret")
	if err != nil {
		t.Fatalf("failed to build authenticator: %v", err)
	}

	handler := httptransport.NewRouter(httptransport.RouterConfig{
		Assignments: httptransport.NewAssignmentHandler(application.NewAssignmentService(store, clock.NowFunc(), logger), logger),
		Requests:    httptransport.NewRequestHandler(application.NewRequestService(store, clock.NowFunc(), logger), logger),
		Catalog:     httptransport.NewCatalogHandler(application.NewCatalogService(store, logger), logger),
		Blackouts:   httptransport.NewBlackoutHandler(application.NewBlackoutService(store, clock.NowFunc(), logger), logger),
		Auth:        httptransport.NewAuthHandler(authenticator, logger),
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(logger),
		},
	})
	return handler, campus, store
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", recorder.Body.String(), err)
	}
}

func errorMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, recorder, &body)
	return body.Error
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	handler, _, _ := newTestServer(t)

	t.Run("valid credentials return the role", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodPost, "/api/login", map[string]string{
			"username": "admin",
			"password": "admin-secret",
		})
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
		}

		var body struct {
			OK   bool   `json:"ok"`
			Role string `json:"role"`
		}
		decodeBody(t, recorder, &body)
		if !body.OK || body.Role != "admin" {
			t.Errorf("unexpected login body: %+v", body)
		}
	})

	t.Run("invalid credentials return 401", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodPost, "/api/login", map[string]string{
			"username": "admin",
			"password": "wrong",
		})
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", recorder.Code)
		}
		if msg := errorMessage(t, recorder); msg == "" {
			t.Error("expected an error message")
		}
	})
}

func TestCatalogEndpoints(t *testing.T) {
	t.Parallel()

	handler, _, _ := newTestServer(t)

	t.Run("departments", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodGet, "/api/departments", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}

		var departments []struct {
			DeptID   int64  `json:"DeptID"`
			DeptName string `json:"DeptName"`
		}
		decodeBody(t, recorder, &departments)
		if len(departments) != 1 || departments[0].DeptName != "Computer Science" {
			t.Errorf("unexpected departments: %+v", departments)
		}
	})

	t.Run("rooms include building name", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodGet, "/api/rooms", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}

		var rooms []struct {
			RoomID     int64  `json:"RoomID"`
			RoomNumber string `json:"RoomNumber"`
			BldgName   string `json:"BldgName"`
			Capacity   int    `json:"Capacity"`
		}
		decodeBody(t, recorder, &rooms)
		if len(rooms) != 1 || rooms[0].RoomNumber != "101" || rooms[0].BldgName != "Engineering Hall" {
			t.Errorf("unexpected rooms: %+v", rooms)
		}
	})

	t.Run("mutating methods are rejected", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodPost, "/api/departments", map[string]string{"name": "History"})
		if recorder.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", recorder.Code)
		}
	})
}

func TestRequestEndpoints(t *testing.T) {
	t.Parallel()

	handler, campus, _ := newTestServer(t)

	t.Run("submission returns the generated id", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodPost, "/api/requests", map[string]any{
			"classID":       campus.ClassID,
			"deptID":        campus.DeptID,
			"priority":      2,
			"preferredTime": "TR 13:00-14:30",
			"equipRequest":  "Projector",
			"cardBltID":     campus.BldgID,
		})
		if recorder.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
		}

		var body struct {
			Message   string `json:"message"`
			RequestID int64  `json:"requestID"`
		}
		decodeBody(t, recorder, &body)
		if body.Message != "Request submitted successfully" || body.RequestID == 0 {
			t.Errorf("unexpected body: %+v", body)
		}
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodPost, "/api/requests", map[string]any{
			"priority": 2,
		})
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", recorder.Code)
		}
		if msg := errorMessage(t, recorder); msg == "" {
			t.Error("expected an error message")
		}
	})

	t.Run("listing returns pending requests", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodGet, "/api/requests", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}

		var requests []struct {
			RequestID int64  `json:"RequestID"`
			DeptName  string `json:"DeptName"`
			ClassName string `json:"ClassName"`
			Priority  int    `json:"Priority"`
		}
		decodeBody(t, recorder, &requests)
		if len(requests) == 0 {
			t.Fatal("expected pending requests")
		}
		if requests[0].DeptName != "Computer Science" {
			t.Errorf("unexpected first row: %+v", requests[0])
		}
	})
}

func TestAssignmentEndpoints(t *testing.T) {
	t.Parallel()

	handler, campus, store := newTestServer(t)
	fixture := testfixtures.NewFixture(t, store)

	resolve := func(requestID int64, day, start, end string) *httptest.ResponseRecorder {
		return doJSON(t, handler, http.MethodPost, "/api/assignments", map[string]any{
			"requestID": requestID,
			"roomID":    campus.RoomID,
			"dayOfWeek": day,
			"startTime": start,
			"endTime":   end,
		})
	}

	t.Run("resolution creates the assignment", func(t *testing.T) {
		recorder := resolve(campus.RequestID, "Monday", "09:00", "10:00")
		if recorder.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
		}

		var body struct {
			Message      string `json:"message"`
			AssignmentID int64  `json:"assignmentId"`
		}
		decodeBody(t, recorder, &body)
		if body.Message != "Assignment created successfully" || body.AssignmentID == 0 {
			t.Errorf("unexpected body: %+v", body)
		}
	})

	t.Run("overlapping slot returns 409", func(t *testing.T) {
		requestID := fixture.PendingRequest(campus.ClassID, campus.DeptID, 1, "MWF 09:30-10:30")
		recorder := resolve(requestID, "Monday", "09:30", "10:30")
		if recorder.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", recorder.Code)
		}
		if msg := errorMessage(t, recorder); msg != "Conflict: Room is already assigned during this time slot." {
			t.Errorf("unexpected conflict message %q", msg)
		}
	})

	t.Run("unknown request returns 404", func(t *testing.T) {
		recorder := resolve(9999, "Tuesday", "09:00", "10:00")
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", recorder.Code)
		}
		if msg := errorMessage(t, recorder); msg != "Request not found." {
			t.Errorf("unexpected message %q", msg)
		}
	})

	t.Run("validation failure returns 400", func(t *testing.T) {
		recorder := resolve(campus.RequestID, "Monday", "10:00", "09:00")
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", recorder.Code)
		}
	})

	t.Run("listing renders days and 12-hour times", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodGet, "/api/assignments", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}

		var assignments []struct {
			ClassName  string `json:"ClassName"`
			BldgName   string `json:"BldgName"`
			RoomNumber string `json:"RoomNumber"`
			DayOfWeek  string `json:"DayOfWeek"`
			StartTime  string `json:"StartTime"`
			EndTime    string `json:"EndTime"`
		}
		decodeBody(t, recorder, &assignments)
		if len(assignments) != 1 {
			t.Fatalf("expected 1 assignment, got %d", len(assignments))
		}
		row := assignments[0]
		if row.DayOfWeek != "Monday" || row.StartTime != "09:00 AM" || row.EndTime != "10:00 AM" {
			t.Errorf("unexpected rendering: %+v", row)
		}
		if row.BldgName != "Engineering Hall" || row.RoomNumber != "101" {
			t.Errorf("unexpected location: %+v", row)
		}
	})
}

func TestBlackoutEndpoint(t *testing.T) {
	t.Parallel()

	handler, campus, store := newTestServer(t)
	fixture := testfixtures.NewFixture(t, store)

	t.Run("creation returns the generated id", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodPost, "/api/blackouts", map[string]any{
			"roomID":    campus.RoomID,
			"dayOfWeek": "Monday",
			"startTime": "13:00",
			"endTime":   "15:00",
			"reason":    "HVAC maintenance",
		})
		if recorder.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
		}

		var body struct {
			Message    string `json:"message"`
			BlackoutID int64  `json:"blackoutID"`
		}
		decodeBody(t, recorder, &body)
		if body.Message != "Blackout created successfully" || body.BlackoutID == 0 {
			t.Errorf("unexpected body: %+v", body)
		}
	})

	t.Run("resolution into the blackout returns 409", func(t *testing.T) {
		requestID := fixture.PendingRequest(campus.ClassID, campus.DeptID, 1, "MWF 14:00-14:30")
		recorder := doJSON(t, handler, http.MethodPost, "/api/assignments", map[string]any{
			"requestID": requestID,
			"roomID":    campus.RoomID,
			"dayOfWeek": "Monday",
			"startTime": "14:00",
			"endTime":   "14:30",
		})
		if recorder.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", recorder.Code)
		}
		if msg := errorMessage(t, recorder); msg != "Conflict: Room is blacked out during this time slot." {
			t.Errorf("unexpected conflict message %q", msg)
		}
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		recorder := doJSON(t, handler, http.MethodPost, "/api/blackouts", map[string]any{
			"roomID": campus.RoomID,
		})
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", recorder.Code)
		}
	})
}
