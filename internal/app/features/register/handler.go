// internal/app/features/register/handler.go
package register

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	groupstore "github.com/dalemusser/taskdeck/internal/app/store/groups"
	"github.com/dalemusser/taskdeck/internal/app/store/queries/userstate"
	userstore "github.com/dalemusser/taskdeck/internal/app/store/users"
	"github.com/dalemusser/taskdeck/internal/app/system/apperrors"
	"github.com/dalemusser/taskdeck/internal/app/system/auth"
	"github.com/dalemusser/taskdeck/internal/app/system/httpjson"
	"github.com/dalemusser/taskdeck/internal/app/system/metrics"
	"github.com/dalemusser/taskdeck/internal/app/system/timeouts"
	"github.com/dalemusser/taskdeck/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MsgDuplicateAccount is the conflict body for an already-taken name.
const MsgDuplicateAccount = "A user with that account name already exists."

// UserCreator covers the user-store operations registration needs.
type UserCreator interface {
	NameExists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, u models.User) error
}

// GroupCreator inserts the default group for a new user.
type GroupCreator interface {
	Insert(ctx context.Context, g models.Group) error
}

// StateAssembler builds the aggregate view returned after signup.
type StateAssembler interface {
	Assemble(ctx context.Context, user *models.User) (*models.UserState, error)
}

type Handler struct {
	Users     UserCreator
	Groups    GroupCreator
	Assembler StateAssembler
	Tokens    *auth.TokenRegistry
	Metrics   *metrics.Collector
	Log       *zap.Logger
}

func NewHandler(db *mongo.Database, tokens *auth.TokenRegistry, collector *metrics.Collector, logger *zap.Logger) *Handler {
	return &Handler{
		Users:     userstore.New(db),
		Groups:    groupstore.New(db),
		Assembler: userstate.FromDB(db),
		Tokens:    tokens,
		Metrics:   collector,
		Log:       logger,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	UserID string            `json:"userID"`
	State  *models.UserState `json:"state"`
}

// HandleRegister serves POST /user/create.
//
// The duplicate-name check runs first; on conflict nothing is
// inserted. Otherwise a user document and its default "To Do" group
// are created, and the state is assembled from a minimal {id, name}
// user (the assembler re-fetches the persisted document itself).
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			h.fail(w, apperrors.Wrap(apperrors.InvalidArgument, "Request body is null", err))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	exists, err := h.Users.NameExists(ctx, req.Username)
	if err != nil {
		h.fail(w, err)
		return
	}
	if exists {
		h.fail(w, apperrors.New(apperrors.Conflict, MsgDuplicateAccount))
		return
	}

	userID := uuid.NewString()
	user := models.User{
		ID:           userID,
		Name:         req.Username,
		PasswordHash: auth.HashPassword(req.Password),
	}
	if err := h.Users.Create(ctx, user); err != nil {
		if err == userstore.ErrDuplicateName {
			// Lost a race with a concurrent registration; same
			// conflict response as the pre-check.
			h.fail(w, apperrors.Wrap(apperrors.Conflict, MsgDuplicateAccount, err))
			return
		}
		h.fail(w, err)
		return
	}

	group := models.Group{
		ID:    uuid.NewString(),
		Owner: userID,
		Name:  models.DefaultGroupName,
	}
	if err := h.Groups.Insert(ctx, group); err != nil {
		h.fail(w, err)
		return
	}

	state, err := h.Assembler.Assemble(ctx, &models.User{ID: userID, Name: req.Username})
	if err != nil {
		h.fail(w, err)
		return
	}

	h.Tokens.Issue(userID)
	h.Metrics.RecordRegisterSuccess()
	h.Log.Info("registration succeeded", zap.String("user_id", userID))

	httpjson.Write(w, http.StatusOK, registerResponse{UserID: userID, State: state})
}

// fail renders a registration failure. Conflicts render as a
// {"message": ...} document, other classified errors as bare text,
// and anything unclassified reads as StoreFailure and renders the
// generic body without its internal error text.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	kind := apperrors.KindOf(err)
	if kind == apperrors.StoreFailure {
		h.Log.Error("registration failed", zap.Error(err))
	}
	h.Metrics.RecordRegisterFailure(failureReason(kind))
	if kind == apperrors.Conflict {
		httpjson.WriteMessage(w, http.StatusInternalServerError, apperrors.MessageOf(err, MsgDuplicateAccount))
		return
	}
	httpjson.WriteText(w, http.StatusInternalServerError, apperrors.MessageOf(err, "registration failed"))
}

func failureReason(k apperrors.Kind) string {
	switch k {
	case apperrors.InvalidArgument:
		return "bad_request"
	case apperrors.Conflict:
		return "conflict"
	default:
		return "store"
	}
}
