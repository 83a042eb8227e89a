// internal/app/features/tasks/handler.go
package tasks

import (
	"context"
	"encoding/json"
	"net/http"

	taskstore "github.com/dalemusser/taskdeck/internal/app/store/tasks"
	"github.com/dalemusser/taskdeck/internal/app/system/httpjson"
	"github.com/dalemusser/taskdeck/internal/app/system/timeouts"
	"github.com/dalemusser/taskdeck/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Store *taskstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Store: taskstore.New(db), Log: logger}
}

type taskEnvelope struct {
	Task models.Task `json:"task"`
}

// HandleNew serves POST /task/new: insert the posted task, assigning
// an id when the client did not. Success is a 200 with an empty body.
func (h *Handler) HandleNew(w http.ResponseWriter, r *http.Request) {
	var req taskEnvelope
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteText(w, http.StatusBadRequest, "invalid task body")
		return
	}
	if req.Task.ID == "" {
		req.Task.ID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Insert(ctx, req.Task); err != nil {
		h.Log.Error("task insert failed", zap.Error(err))
		httpjson.WriteText(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.WriteEmpty(w)
}

// HandleUpdate serves POST /task/update: $set the posted fields on the
// task with the posted id.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req taskEnvelope
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteText(w, http.StatusBadRequest, "invalid task body")
		return
	}
	if req.Task.ID == "" {
		httpjson.WriteText(w, http.StatusBadRequest, "task id is required")
		return
	}

	fields := bson.M{
		"name":       req.Task.Name,
		"isComplete": req.Task.IsComplete,
		"owner":      req.Task.Owner,
	}
	if req.Task.Group != "" {
		fields["group"] = req.Task.Group
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Update(ctx, req.Task.ID, fields); err != nil {
		h.Log.Error("task update failed",
			zap.String("task_id", req.Task.ID), zap.Error(err))
		httpjson.WriteText(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.WriteEmpty(w)
}
