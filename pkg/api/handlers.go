package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alleslabs/aldus-api/internal/common"
	"github.com/alleslabs/aldus-api/internal/dataset"
	"github.com/alleslabs/aldus-api/internal/entity"
	"github.com/alleslabs/aldus-api/internal/logger"
	"github.com/alleslabs/aldus-api/internal/records"
	"github.com/alleslabs/aldus-api/pkg/models"
)

// DataService defines the data operations exposed over HTTP.
type DataService interface {
	Accounts(ctx context.Context, scope dataset.Scope) ([]models.Account, error)
	Account(ctx context.Context, scope dataset.Scope, address string) (models.Account, error)
	Codes(ctx context.Context, scope dataset.Scope) ([]models.Code, error)
	Code(ctx context.Context, scope dataset.Scope, rawID string) (models.Code, error)
	Contracts(ctx context.Context, scope dataset.Scope) ([]models.Contract, error)
	Contract(ctx context.Context, scope dataset.Scope, address string) (models.Contract, error)
	Modules(ctx context.Context, scope dataset.Scope) ([]models.Module, error)
	Module(ctx context.Context, scope dataset.Scope, address, name string) (models.Module, error)
	Assets(ctx context.Context, scope dataset.Scope) ([]models.Asset, error)
	Entities(ctx context.Context, scope dataset.Scope, opts entity.Options) ([]models.Entity, error)
	Entity(ctx context.Context, scope dataset.Scope, slug string, opts entity.Options) (models.Entity, error)
	RawEntities(ctx context.Context) ([]models.RawEntity, error)
	RawEntity(ctx context.Context, slug string) (models.RawEntity, error)
	Chains(ctx context.Context) ([]models.Chain, error)
	GlobalAssets(ctx context.Context) ([]models.RawAsset, error)
	Health(ctx context.Context) error
}

// Handler handles HTTP requests for the API.
type Handler struct {
	svc DataService
	log *logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(svc DataService, log *logger.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

// ListAccounts returns every account of a chain/network.
// @Summary List accounts
// @Description Get all accounts of a chain/network in dataset order
// @Tags Accounts
// @Produce json
// @Param chain path string true "Chain name"
// @Param network path string true "Network name"
// @Success 200 {array} models.Account "Accounts"
// @Failure 400 {object} ErrorResponse "Invalid chain or network"
// @Failure 500 {object} ErrorResponse "Dataset could not be loaded"
// @Router /{chain}/{network}/accounts [get]
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.Accounts(r.Context(), scopeOf(r))
	h.respond(w, accounts, err)
}

// GetAccount returns one account by address.
// @Summary Get account
// @Tags Accounts
// @Produce json
// @Param chain path string true "Chain name"
// @Param network path string true "Network name"
// @Param address path string true "Account address"
// @Success 200 {object} models.Account "Account"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Dataset could not be loaded"
// @Router /{chain}/{network}/accounts/{address} [get]
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.svc.Account(r.Context(), scopeOf(r), r.PathValue("address"))
	h.respond(w, account, err)
}

// ListCodes returns every code of a chain/network.
// @Summary List codes
// @Tags Codes
// @Produce json
// @Param chain path string true "Chain name"
// @Param network path string true "Network name"
// @Success 200 {array} models.Code "Codes"
// @Failure 400 {object} ErrorResponse "Invalid chain or network"
// @Failure 500 {object} ErrorResponse "Dataset could not be loaded"
// @Router /{chain}/{network}/codes [get]
func (h *Handler) ListCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.svc.Codes(r.Context(), scopeOf(r))
	h.respond(w, codes, err)
}

// GetCode returns one code by its integer id.
// @Summary Get code
// @Tags Codes
// @Produce json
// @Param chain path string true "Chain name"
// @Param network path string true "Network name"
// @Param id path integer true "Code id"
// @Success 200 {object} models.Code "Code"
// @Failure 400 {object} ErrorResponse "Code id is not an integer"
// @Failure 404 {object} ErrorResponse "Code not found"
// @Failure 500 {object} ErrorResponse "Dataset could not be loaded"
// @Router /{chain}/{network}/codes/{id} [get]
func (h *Handler) GetCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.svc.Code(r.Context(), scopeOf(r), r.PathValue("id"))
	h.respond(w, code, err)
}

// ListContracts returns every contract of a chain/network.
// @Summary List contracts
// @Tags Contracts
// @Produce json
// @Param chain path string true "Chain name"
// @Param network path string true "Network name"
// @Success 200 {array} models.Contract "Contracts"
// @Failure 400 {object} ErrorResponse "Invalid chain or network"
// @Failure 500 {object} ErrorResponse "Dataset could not be loaded"
// @Router /{chain}/{network}/contracts [get]
func (h *Handler) ListContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.svc.Contracts(r.Context(), scopeOf(r))
	h.respond(w, contracts, err)
}

// GetContract returns one contract by address.
// @Summary Get contract
// @Tags Contracts
// @Produce json
// @Param chain path string true "Chain name"
// @Param network path string true "Network name"
// @Param address path string true "Contract address"
// @Success 200 {object} models.Contract "Contract"
// @Failure 404 {object} ErrorResponse "Contract not found"
// @Failure 500 {object} ErrorResponse "Dataset could not be loaded"
// @Router /{chain}/{network}/contracts/{address} [get]
func (h *Handler) GetContract(w http.ResponseWriter, r *http.Request) {
	contract, err := h.svc.Contract(r.Context(), scopeOf(r), r.PathValue("address"))
	h.respond(w, contract, err)
}

// ListModules returns every module of a chain/network. Only the module chain has any.
// @Summary List modules
// @Tags Modules
// @Produce json
// @Param chain path string true "Chain name"
// @Param network path string true "Network name"
// @Success 200 {array} models.Module "Modules, empty outside the module chain"
// @Failure 400 {object} ErrorResponse "Invalid chain or network"
// @Failure 500 {object} ErrorResponse "Dataset could not be loaded"
// @Router /{chain}/{network}/modules [get]
func (h *Handler) ListModules(w http.ResponseWriter, r *http.Request) {
	modules, err := h.svc.Modules(r.Context(), scopeOf(r))
	h.respond(w, modules, err)
}

// GetModule returns one module by address and name.
// @Summary Get module
// @Tags Modules
// @Produce json
// @Param chain path string true "Chain name"
// @Param network path string true "Network name"
// @Param address path string true "Module address"
// @Param name path string true "Module name"
// @Success 200 {object} models.Module "Module"
// @Failure 404 {object} ErrorResponse "Module not found"
// @Failure 500 {object} ErrorResponse "Dataset could not be loaded"
// @Router /{chain}/{network}/modules/{address}/{name} [get]
func (h *Handler) GetModule(w http.ResponseWriter, r *http.Request) {
	module, err := h.svc.Module(r.Context(), scopeOf(r), r.PathValue("address"), r.PathValue("name"))
	h.respond(w, module, err)
}

// ListAssets returns the assets known on a chain/network.
// @Summary List assets
// @Description Assets available on the chain/network, with the local id flattened and a placeholder price
// @Tags Assets
// @Produce json
// @Param chain path string true "Chain name"
// @Param network path string true "Network name"
// @Success 200 {array} models.Asset "Assets"
// @Failure 500 {object} ErrorResponse "Dataset could not be loaded"
// @Router /{chain}/{network}/assets [get]
func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.svc.Assets(r.Context(), scopeOf(r))
	h.respond(w, assets, err)
}

// ListEntities returns the entities present on a chain/network.
// @Summary List entities
// @Description Entities owning at least one account, code, contract or module on the chain/network.
// @Description Relations are attached only when their flag is "true".
// @Tags Entities
// @Produce json
// @Param chain path string true "Chain name"
// @Param network path string true "Network name"
// @Param accounts query bool false "Attach accounts"
// @Param codes query bool false "Attach codes"
// @Param contracts query bool false "Attach contracts"
// @Param modules query bool false "Attach modules"
// @Success 200 {array} models.Entity "Entities"
// @Failure 500 {object} ErrorResponse "Dataset could not be loaded"
// @Router /{chain}/{network}/entities [get]
func (h *Handler) ListEntities(w http.ResponseWriter, r *http.Request) {
	entities, err := h.svc.Entities(r.Context(), scopeOf(r), entityOptions(r))
	h.respond(w, entities, err)
}

// GetEntity returns one entity with the requested relations.
// @Summary Get entity
// @Tags Entities
// @Produce json
// @Param chain path string true "Chain name"
// @Param network path string true "Network name"
// @Param slug path string true "Entity slug"
// @Param accounts query bool false "Attach accounts"
// @Param codes query bool false "Attach codes"
// @Param contracts query bool false "Attach contracts"
// @Param modules query bool false "Attach modules"
// @Success 200 {object} models.Entity "Entity"
// @Failure 404 {object} ErrorResponse "Entity not found"
// @Failure 500 {object} ErrorResponse "Dataset could not be loaded"
// @Router /{chain}/{network}/entities/{slug} [get]
func (h *Handler) GetEntity(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.Entity(r.Context(), scopeOf(r), r.PathValue("slug"), entityOptions(r))
	h.respond(w, e, err)
}

// ListRawEntities returns the entity registry as stored.
// @Summary List raw entities
// @Tags Entities
// @Produce json
// @Success 200 {array} models.RawEntity "Entities"
// @Failure 500 {object} ErrorResponse "Dataset could not be loaded"
// @Router /entities [get]
func (h *Handler) ListRawEntities(w http.ResponseWriter, r *http.Request) {
	entities, err := h.svc.RawEntities(r.Context())
	h.respond(w, entities, err)
}

// GetRawEntity returns one entity of the registry as stored.
// @Summary Get raw entity
// @Tags Entities
// @Produce json
// @Param slug path string true "Entity slug"
// @Success 200 {object} models.RawEntity "Entity"
// @Failure 404 {object} ErrorResponse "Entity not found"
// @Failure 500 {object} ErrorResponse "Dataset could not be loaded"
// @Router /entities/{slug} [get]
func (h *Handler) GetRawEntity(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.RawEntity(r.Context(), r.PathValue("slug"))
	h.respond(w, e, err)
}

// ListChains returns the chain registry verbatim.
// @Summary List chains
// @Tags Globals
// @Produce json
// @Success 200 {array} object "Chain registry entries"
// @Failure 500 {object} ErrorResponse "Dataset could not be loaded"
// @Router /globals/chains [get]
func (h *Handler) ListChains(w http.ResponseWriter, r *http.Request) {
	chains, err := h.svc.Chains(r.Context())
	h.respond(w, chains, err)
}

// ListGlobalAssets returns the full asset registry.
// @Summary List global assets
// @Tags Globals
// @Produce json
// @Success 200 {array} models.RawAsset "Asset registry"
// @Failure 500 {object} ErrorResponse "Dataset could not be loaded"
// @Router /globals/assets [get]
func (h *Handler) ListGlobalAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.svc.GlobalAssets(r.Context())
	h.respond(w, assets, err)
}

// Health returns the health status of the API.
// @Summary Health check
// @Description Check that the API is up and the data root is readable
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Healthy"
// @Failure 503 {object} HealthResponse "Data root unavailable"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    healthStatusOK,
		Timestamp: time.Now().UTC(),
	}

	if err := h.svc.Health(r.Context()); err != nil {
		h.log.Errorf("Health check failed: %v", err)
		response.Status = healthStatusUnhealthy
		respondJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	respondJSON(w, http.StatusOK, response)
}

func scopeOf(r *http.Request) dataset.Scope {
	return dataset.Scope{
		Chain:   r.PathValue("chain"),
		Network: r.PathValue("network"),
	}
}

func entityOptions(r *http.Request) entity.Options {
	q := r.URL.Query()
	return entity.Options{
		Accounts:  common.ParseFlag(q.Get("accounts")),
		Codes:     common.ParseFlag(q.Get("codes")),
		Contracts: common.ParseFlag(q.Get("contracts")),
		Modules:   common.ParseFlag(q.Get("modules")),
	}
}

// respond writes data as a 200, or maps err onto an error response.
func (h *Handler) respond(w http.ResponseWriter, data any, err error) {
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, data)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	var (
		loadErr    *dataset.LoadError
		keyErr     *records.InvalidKeyError
		scopeErr   *dataset.InvalidScopeError
		missingErr *dataset.MissingScopeError
		unknownErr *dataset.UnknownDatasetError
	)

	switch {
	case errors.Is(err, dataset.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &keyErr), errors.As(err, &scopeErr):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &loadErr):
		// the loader already logged the path and cause
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to load %s dataset", loadErr.Kind))
	case errors.As(err, &missingErr), errors.As(err, &unknownErr):
		h.log.Errorf("Dataset resolution failed: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to resolve dataset")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.log.Debugf("Request aborted: %v", err)
		respondError(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		h.log.Errorf("Request failed: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// Encode JSON first to catch any errors before writing status
	encoded, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)

	if _, err := w.Write(encoded); err != nil {
		// Headers already sent, nothing left to report to the client
		return
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	response := ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}
	respondJSON(w, status, response)
}
