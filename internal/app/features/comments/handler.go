// internal/app/features/comments/handler.go
package comments

import (
	"context"
	"encoding/json"
	"net/http"

	commentstore "github.com/dalemusser/taskdeck/internal/app/store/comments"
	"github.com/dalemusser/taskdeck/internal/app/system/httpjson"
	"github.com/dalemusser/taskdeck/internal/app/system/sanitize"
	"github.com/dalemusser/taskdeck/internal/app/system/timeouts"
	"github.com/dalemusser/taskdeck/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Store *commentstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Store: commentstore.New(db), Log: logger}
}

type commentEnvelope struct {
	Comment models.Comment `json:"comment"`
}

// HandleNew serves POST /comment/new: sanitize the content, assign an
// id when absent, insert. Success is a 200 with an empty body.
func (h *Handler) HandleNew(w http.ResponseWriter, r *http.Request) {
	var req commentEnvelope
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteText(w, http.StatusBadRequest, "invalid comment body")
		return
	}
	if req.Comment.ID == "" {
		req.Comment.ID = uuid.NewString()
	}
	req.Comment.Content = sanitize.Content(req.Comment.Content)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Insert(ctx, req.Comment); err != nil {
		h.Log.Error("comment insert failed", zap.Error(err))
		httpjson.WriteText(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.WriteEmpty(w)
}
