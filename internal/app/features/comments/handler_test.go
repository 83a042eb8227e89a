package comments_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/taskdeck/internal/app/features/comments"
	commentstore "github.com/dalemusser/taskdeck/internal/app/store/comments"
	"github.com/dalemusser/taskdeck/internal/domain/models"
	"github.com/dalemusser/taskdeck/internal/testutil"
	"go.uber.org/zap"
)

type commentBody struct {
	Comment models.Comment `json:"comment"`
}

func TestHandleNew_InvalidBody(t *testing.T) {
	h := &comments.Handler{Log: zap.NewNop()}

	req := httptest.NewRequest(http.MethodPost, "/comment/new", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.HandleNew(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleNew_Mongo_InsertsComment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := comments.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, "/comment/new", commentBody{Comment: models.Comment{
		ID: "c1", Task: "t1", Owner: "u1", Content: "looks good",
	}})
	rec := httptest.NewRecorder()
	h.HandleNew(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %q)", rec.Code, http.StatusOK, rec.Body.String())
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	got, err := commentstore.New(db).ListByTasks(ctx, []string{"t1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Content != "looks good" {
		t.Errorf("stored comments: got %+v", got)
	}
}

func TestHandleNew_Mongo_SanitizesContent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := comments.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, "/comment/new", commentBody{Comment: models.Comment{
		Task: "t1", Owner: "u1",
		Content: `before <script>alert("x")</script>after`,
	}})
	rec := httptest.NewRecorder()
	h.HandleNew(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body %q)", rec.Code, rec.Body.String())
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	got, err := commentstore.New(db).ListByTasks(ctx, []string{"t1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("comments: got %d, want 1", len(got))
	}
	if strings.Contains(got[0].Content, "<script") {
		t.Errorf("script tag survived sanitization: %q", got[0].Content)
	}
	if got[0].ID == "" {
		t.Error("expected a generated comment id")
	}
}
