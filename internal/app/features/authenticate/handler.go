// internal/app/features/authenticate/handler.go
package authenticate

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dalemusser/taskdeck/internal/app/store/queries/userstate"
	userstore "github.com/dalemusser/taskdeck/internal/app/store/users"
	"github.com/dalemusser/taskdeck/internal/app/system/apperrors"
	"github.com/dalemusser/taskdeck/internal/app/system/auth"
	"github.com/dalemusser/taskdeck/internal/app/system/httpjson"
	"github.com/dalemusser/taskdeck/internal/app/system/metrics"
	"github.com/dalemusser/taskdeck/internal/app/system/timeouts"
	"github.com/dalemusser/taskdeck/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Failure bodies the login endpoint reports. Unknown-user and
// missing-credential requests share one message: the lookup happens
// before any field validation, so the endpoint cannot tell them apart.
const (
	MsgNullBody          = "Request body is null"
	MsgUserNotFound      = "User not found"
	MsgPasswordIncorrect = "Password incorrect"
)

// UserLookup is the store operation login needs.
type UserLookup interface {
	GetByName(ctx context.Context, name string) (*models.User, error)
}

// StateAssembler builds the aggregate view returned with the token.
type StateAssembler interface {
	Assemble(ctx context.Context, user *models.User) (*models.UserState, error)
}

type Handler struct {
	Users     UserLookup
	Assembler StateAssembler
	Tokens    *auth.TokenRegistry
	Metrics   *metrics.Collector
	Log       *zap.Logger
}

func NewHandler(db *mongo.Database, tokens *auth.TokenRegistry, collector *metrics.Collector, logger *zap.Logger) *Handler {
	return &Handler{
		Users:     userstore.New(db),
		Assembler: userstate.FromDB(db),
		Tokens:    tokens,
		Metrics:   collector,
		Log:       logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string            `json:"token"`
	State *models.UserState `json:"state"`
}

// HandleLogin serves POST /authenticate.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// An absent body (immediate EOF) is reported distinctly;
		// anything else falls through as an unmatched user below so
		// malformed requests are indistinguishable from unknown ones.
		if errors.Is(err, io.EOF) {
			h.fail(w, apperrors.Wrap(apperrors.InvalidArgument, MsgNullBody, err))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByName(ctx, req.Username)
	switch {
	case err == mongo.ErrNoDocuments:
		h.fail(w, apperrors.Wrap(apperrors.NotFound, MsgUserNotFound, err))
		return
	case err != nil:
		h.fail(w, err)
		return
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		h.fail(w, apperrors.New(apperrors.Unauthorized, MsgPasswordIncorrect))
		return
	}

	actx, acancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer acancel()

	state, err := h.Assembler.Assemble(actx, user)
	if err != nil {
		h.fail(w, err)
		return
	}

	token := h.Tokens.Issue(user.ID)
	h.Metrics.RecordLoginSuccess()
	h.Log.Info("login succeeded", zap.String("user_id", user.ID))

	httpjson.Write(w, http.StatusOK, loginResponse{Token: token, State: state})
}

// fail renders a login failure. Classified errors carry their exact
// caller-facing message; anything unclassified reads as StoreFailure
// and renders the generic body, so internal error text never reaches
// a response on this path.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	kind := apperrors.KindOf(err)
	if kind == apperrors.StoreFailure {
		h.Log.Error("login failed", zap.Error(err))
	}
	h.Metrics.RecordLoginFailure(failureReason(kind))
	httpjson.WriteText(w, http.StatusInternalServerError, apperrors.MessageOf(err, "login failed"))
}

func failureReason(k apperrors.Kind) string {
	switch k {
	case apperrors.InvalidArgument:
		return "bad_request"
	case apperrors.NotFound:
		return "not_found"
	case apperrors.Unauthorized:
		return "bad_password"
	default:
		return "store"
	}
}
