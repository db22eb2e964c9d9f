// Package server exposes the analysis engine, the regional benchmark
// provider, and the persistence layer over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/edalganoglu/EmlakMetrik-sub000/internal/advisor"
	"github.com/edalganoglu/EmlakMetrik-sub000/internal/engine"
	"github.com/edalganoglu/EmlakMetrik-sub000/internal/region"
	"github.com/edalganoglu/EmlakMetrik-sub000/internal/store"
	"github.com/edalganoglu/EmlakMetrik-sub000/pkg/constants"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Storage is the slice of the store the server needs; narrowed to an
// interface so handler tests can run against a fake.
type Storage interface {
	SpendAndSave(ctx context.Context, userID string, cost int64, rec store.AnalysisRecord) (store.SpendResult, error)
	Grant(ctx context.Context, userID string, amount int64, kind, note string) (int64, error)
	Balance(ctx context.Context, userID string) (int64, error)
	ListAnalyses(ctx context.Context, userID string) ([]store.Analysis, error)
	GetAnalysis(ctx context.Context, id int64) (store.Analysis, error)
}

type handler struct {
	logger         *zap.Logger
	storage        Storage
	regions        region.Provider
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler serving the analysis API.
func NewHandler(logger *zap.Logger, storage Storage, regions region.Provider, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}
	if regions == nil {
		regions = region.StaticProvider{}
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		storage:        storage,
		regions:        regions,
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/analyze", h.handleAnalyze).Methods("POST")
	r.HandleFunc("/api/analyses", h.handleCommit).Methods("POST")
	r.HandleFunc("/api/analyses", h.handleListAnalyses).Methods("GET")
	r.HandleFunc("/api/analyses/{id:[0-9]+}", h.handleGetAnalysis).Methods("GET")
	r.HandleFunc("/api/region", h.handleRegionLookup).Methods("GET")
	r.HandleFunc("/api/wallet", h.handleWallet).Methods("GET")
	r.HandleFunc("/api/wallet/grants", h.handleGrant).Methods("POST")
	r.HandleFunc("/api/advisor/term", h.handleTermAdvice).Methods("POST")
	r.HandleFunc("/api/version", h.handleVersion).Methods("GET")
	r.Use(h.logRequests)

	return r
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.logger.Debug("request served",
			zap.String("op", "server.logRequests"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// propertyPayload mirrors the analysis form. AppreciationRatePercent is a
// pointer so that an omitted field can be defaulted from regional data while
// an explicit zero still means "no appreciation".
type propertyPayload struct {
	Price          float64 `json:"price"`
	MonthlyRent    float64 `json:"monthlyRent"`
	MonthlyDues    float64 `json:"monthlyDues"`
	RenovationCost float64 `json:"renovationCost"`
	PropertyArea   float64 `json:"propertyArea"`

	UseLoan             bool    `json:"useLoan"`
	DownPaymentPercent  float64 `json:"downPaymentPercent"`
	MonthlyInterestRate float64 `json:"monthlyInterestRate"`
	TermMonths          int     `json:"termMonths"`

	AppreciationRatePercent *float64 `json:"appreciationRatePercent,omitempty"`
}

type analyzeRequest struct {
	UserID   string          `json:"userId,omitempty"`
	Title    string          `json:"title,omitempty"`
	Location region.Location `json:"location"`
	Property propertyPayload `json:"property"`
}

type analyzeResponse struct {
	Result     engine.AnalysisResult `json:"result"`
	Benchmark  region.Benchmark      `json:"benchmark"`
	AnalysisID int64                 `json:"analysisId,omitempty"`
	NewBalance *int64                `json:"newBalance,omitempty"`
}

// resolveInput turns a request into an engine input, consulting the
// regional provider for the benchmark and the appreciation default.
func (h *handler) resolveInput(ctx context.Context, req analyzeRequest) (engine.AnalysisInput, region.Benchmark, error) {
	bench, err := h.regions.Lookup(ctx, req.Location)
	if err != nil {
		return engine.AnalysisInput{}, region.Benchmark{}, err
	}

	property := req.Property
	input := engine.AnalysisInput{
		Price:             property.Price,
		MonthlyRent:       property.MonthlyRent,
		MonthlyDues:       property.MonthlyDues,
		RenovationCost:    property.RenovationCost,
		PropertyArea:      property.PropertyArea,
		RegionalBenchmark: &engine.RegionalBenchmark{AvgPricePerArea: bench.AvgPricePerArea},
	}
	if property.AppreciationRatePercent != nil {
		input.AppreciationRatePercent = *property.AppreciationRatePercent
	} else {
		input.AppreciationRatePercent = bench.AppreciationRatePercent
	}
	if property.UseLoan {
		input.Financing = engine.Financing{
			UseLoan:             true,
			DownPaymentPercent:  property.DownPaymentPercent,
			MonthlyInterestRate: property.MonthlyInterestRate,
			TermMonths:          property.TermMonths,
		}
	}
	return input, bench, nil
}

// handleAnalyze computes a preview. It never spends credit and may be
// called for every slider tick.
func (h *handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	input, bench, err := h.resolveInput(r.Context(), req)
	if err != nil {
		h.serverError(w, "failed to resolve regional benchmark", err)
		return
	}

	h.writeJSON(w, http.StatusOK, analyzeResponse{
		Result:    engine.Analyze(input),
		Benchmark: bench,
	})
}

// handleCommit runs the analysis and persists it through the atomic
// spend-and-save operation.
func (h *handler) handleCommit(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.UserID == "" {
		h.clientError(w, http.StatusBadRequest, "userId is required")
		return
	}

	input, bench, err := h.resolveInput(r.Context(), req)
	if err != nil {
		h.serverError(w, "failed to resolve regional benchmark", err)
		return
	}
	result := engine.Analyze(input)

	spend, err := h.storage.SpendAndSave(r.Context(), req.UserID, constants.AnalysisCreditCost, store.AnalysisRecord{
		Title:        req.Title,
		City:         req.Location.City,
		District:     req.Location.District,
		Neighborhood: req.Location.Neighborhood,
		Price:        input.Price,
		MonthlyRent:  input.MonthlyRent,
		Params:       store.NewParamsBlob(input, result),
	})
	if errors.Is(err, store.ErrInsufficientCredit) {
		h.clientError(w, http.StatusPaymentRequired, "insufficient credit balance")
		return
	}
	if err != nil {
		h.serverError(w, "failed to save analysis", err)
		return
	}

	h.writeJSON(w, http.StatusCreated, analyzeResponse{
		Result:     result,
		Benchmark:  bench,
		AnalysisID: spend.AnalysisID,
		NewBalance: &spend.NewBalance,
	})
}

func (h *handler) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		h.clientError(w, http.StatusBadRequest, "userId is required")
		return
	}

	analyses, err := h.storage.ListAnalyses(r.Context(), userID)
	if err != nil {
		h.serverError(w, "failed to list analyses", err)
		return
	}
	if analyses == nil {
		analyses = []store.Analysis{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"analyses": analyses})
}

func (h *handler) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.clientError(w, http.StatusBadRequest, "invalid analysis id")
		return
	}

	analysis, err := h.storage.GetAnalysis(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		h.clientError(w, http.StatusNotFound, "analysis not found")
		return
	}
	if err != nil {
		h.serverError(w, "failed to load analysis", err)
		return
	}
	h.writeJSON(w, http.StatusOK, analysis)
}

func (h *handler) handleRegionLookup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	loc := region.Location{
		City:         query.Get("city"),
		District:     query.Get("district"),
		Neighborhood: query.Get("neighborhood"),
	}

	bench, err := h.regions.Lookup(r.Context(), loc)
	if err != nil {
		h.serverError(w, "failed to resolve regional benchmark", err)
		return
	}
	h.writeJSON(w, http.StatusOK, bench)
}

func (h *handler) handleWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		h.clientError(w, http.StatusBadRequest, "userId is required")
		return
	}

	balance, err := h.storage.Balance(r.Context(), userID)
	if err != nil {
		h.serverError(w, "failed to read wallet", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"userId": userID, "balance": balance})
}

type grantRequest struct {
	UserID string `json:"userId"`
	Amount int64  `json:"amount"`
	Kind   string `json:"kind"`
	Note   string `json:"note,omitempty"`
}

// handleGrant records a credit grant (purchase, rewarded ad, or refund).
func (h *handler) handleGrant(w http.ResponseWriter, r *http.Request) {
	var req grantRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.UserID == "" {
		h.clientError(w, http.StatusBadRequest, "userId is required")
		return
	}
	if req.Amount <= 0 {
		h.clientError(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	switch req.Kind {
	case store.TxKindPurchase, store.TxKindReward, store.TxKindRefund:
	default:
		h.clientError(w, http.StatusBadRequest, "kind must be purchase, reward, or refund")
		return
	}

	balance, err := h.storage.Grant(r.Context(), req.UserID, req.Amount, req.Kind, req.Note)
	if err != nil {
		h.serverError(w, "failed to record grant", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"userId": req.UserID, "balance": balance})
}

func (h *handler) handleTermAdvice(w http.ResponseWriter, r *http.Request) {
	var req advisor.TermRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	recommendation, err := advisor.RecommendTerm(req)
	if err != nil {
		h.clientError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, recommendation)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.clientError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) clientError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *handler) serverError(w http.ResponseWriter, message string, err error) {
	h.logger.Error(message,
		zap.String("op", "server"),
		zap.Error(err),
	)
	h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": message})
}
