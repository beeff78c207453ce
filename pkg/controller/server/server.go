package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-github/v53/github"
	"github.com/javagrunt/javagrunt/pkg/domain/interfaces"
	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/utils/errutil"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// maxWebhookBody matches the payload cap GitHub applies to webhook deliveries.
const maxWebhookBody = 25 << 20

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte("error"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Post("/webhook/github", handleWebhook(uc))
	r.Get("/runall", func(w http.ResponseWriter, r *http.Request) {
		uc.TriggerAdvisor(r.Context())
		writeJSON(w, http.StatusOK, map[string]string{"status": "started"})
	})
	r.Get("/orgs", handleListOrgs(uc))
	r.Get("/orgs/{org}/repos", handleListRepos(uc))
	r.Get("/login/oauth2/code/github", func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimSpace(r.URL.Query().Get("code")) == "" {
			safeWrite(w, http.StatusBadRequest, []byte("missing code"))
			return
		}
		safeWrite(w, http.StatusOK, []byte("received"))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func handleWebhook(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
		if err != nil {
			errutil.HandleError(ctx, "fail to read webhook body", goerr.Wrap(err, "reading webhook body"))
			safeWrite(w, http.StatusInternalServerError, []byte("error"))
			return
		}

		outcome, err := uc.HandleWebhook(ctx, &model.WebhookDelivery{
			Event:      github.WebHookType(r),
			DeliveryID: github.DeliveryID(r),
			Signature:  r.Header.Get(github.SHA256SignatureHeader),
			Body:       body,
		})
		if err != nil {
			if errors.Is(err, types.ErrSignatureInvalid) {
				logging.From(ctx).Warn("Rejected webhook with invalid signature", slog.String("delivery_id", github.DeliveryID(r)))
				safeWrite(w, http.StatusUnauthorized, []byte("invalid signature"))
				return
			}
			errutil.HandleError(ctx, "fail to handle webhook", err)
			safeWrite(w, http.StatusInternalServerError, []byte("error"))
			return
		}

		safeWrite(w, http.StatusOK, []byte(outcome))
	}
}

type orgsResponse struct {
	Orgs []*model.OrgStatusEntry `json:"orgs"`
}

func handleListOrgs(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgs, err := uc.ListOrgStatuses(r.Context())
		if err != nil {
			errutil.HandleError(r.Context(), "fail to list orgs", err)
			safeWrite(w, http.StatusInternalServerError, []byte("error"))
			return
		}
		if orgs == nil {
			orgs = []*model.OrgStatusEntry{}
		}
		writeJSON(w, http.StatusOK, &orgsResponse{Orgs: orgs})
	}
}

type reposResponse struct {
	Repos []string `json:"repos"`
}

func handleListRepos(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		org := chi.URLParam(r, "org")
		repos, err := uc.ListRepos(r.Context(), org)
		if err != nil {
			errutil.HandleError(r.Context(), "fail to list repos", goerr.Wrap(err, "listing repos", goerr.V("org", org)))
			safeWrite(w, http.StatusInternalServerError, []byte("error"))
			return
		}
		if repos == nil {
			repos = []string{}
		}
		writeJSON(w, http.StatusOK, &reposResponse{Repos: repos})
	}
}
