package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/thedevsaddam/govalidator"

	"github.com/lokafit/lokafit/hooks"
	"github.com/lokafit/lokafit/model"
	"github.com/lokafit/lokafit/session"
	"github.com/lokafit/lokafit/store"
	"github.com/lokafit/lokafit/supabase"
)

const maxPhotoSize int64 = 32 << 20

type Session interface {
	State() session.State
	Ready() bool
	SignOut(ctx context.Context) error
}

type Auth interface {
	SignIn(ctx context.Context, email string, password string) (*supabase.SessionUser, error)
	SignUp(ctx context.Context, email string, password string) (*supabase.SessionUser, error)
}

type Scanner interface {
	ScanAccurate(ctx context.Context, filename string, photo []byte, coordinates hooks.Coordinates) (*model.Garment, error)
	ScanQuick(ctx context.Context, filename string, photo []byte) (*model.Garment, error)
}

type SkinToneAnalyzer interface {
	Analyze(ctx context.Context, filename string, photo []byte) (*model.SkinTone, error)
}

type Recommender interface {
	InstantMatches(ctx context.Context, itemColor string) (*model.InstantMatch, error)
	WeeklyPlan(ctx context.Context) (*model.WeeklyPlan, error)
}

type Wardrobe interface {
	Refresh(ctx context.Context) ([]model.Garment, error)
}

// Closet is the local HTTP surface of the app. It exposes the session state,
// the wardrobe and the capture flow to the rendering layer.
type Closet struct {
	Emitter

	Session     Session
	Auth        Auth
	Scanner     Scanner
	SkinTone    SkinToneAnalyzer
	Recommender Recommender
	Wardrobe    Wardrobe
	Store       *store.Store
	Captures    *CapturesRegistry
}

func (ctx *Closet) Handler() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)

	router.HandleFunc("/session", ctx.sessionHandler).Methods(http.MethodGet)
	router.HandleFunc("/auth/login", ctx.loginHandler).Methods(http.MethodPost)
	router.HandleFunc("/auth/sign-up", ctx.signUpHandler).Methods(http.MethodPost)
	router.HandleFunc("/logout", ctx.logoutHandler).Methods(http.MethodPost)
	router.HandleFunc("/wardrobe", ctx.wardrobeHandler).Methods(http.MethodGet)
	router.HandleFunc("/capture", ctx.captureHandler).Methods(http.MethodPost)
	router.HandleFunc("/capture/{id}/calibrate", ctx.calibrateHandler).Methods(http.MethodPost)
	router.HandleFunc("/capture/{id}/retake", ctx.retakeHandler).Methods(http.MethodPost)
	router.HandleFunc("/capture/{id}/confirm", ctx.confirmHandler).Methods(http.MethodPost)
	router.HandleFunc("/skin-tone", ctx.skinToneHandler).Methods(http.MethodPost)
	router.HandleFunc("/recommend/instant", ctx.instantMatchHandler).Methods(http.MethodPost)
	router.HandleFunc("/recommend/weekly", ctx.weeklyPlanHandler).Methods(http.MethodPost)

	return router
}

func (ctx *Closet) sessionHandler(resp http.ResponseWriter, req *http.Request) {
	result := map[string]interface{}{
		"state": ctx.Session.State(),
		"ready": ctx.Session.Ready(),
	}

	snapshot := ctx.Store.Snapshot()
	if snapshot.IsLoggedIn && snapshot.User != nil {
		result["user"] = map[string]string{
			"fullName": snapshot.User.FullName,
			"email":    snapshot.User.Email,
		}
		result["actions"] = []string{"/logout"}
	} else {
		result["actions"] = []string{"/auth/login", "/auth/sign-up"}
	}

	apiJson(resp, http.StatusOK, result)
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ctx *Closet) loginHandler(resp http.ResponseWriter, req *http.Request) {
	ctx.authenticate(resp, req, ctx.Auth.SignIn)
}

func (ctx *Closet) signUpHandler(resp http.ResponseWriter, req *http.Request) {
	ctx.authenticate(resp, req, ctx.Auth.SignUp)
}

func (ctx *Closet) authenticate(
	resp http.ResponseWriter,
	req *http.Request,
	action func(ctx context.Context, email string, password string) (*supabase.SessionUser, error),
) {
	var payload credentialsPayload
	validationErrors := validateCredentialsRequest(req, &payload)
	if validationErrors != nil {
		apiBadRequest(resp, validationErrors)
		return
	}

	user, err := action(req.Context(), payload.Email, payload.Password)
	if err != nil {
		var requestError *supabase.RequestError
		if errors.As(err, &requestError) {
			apiError(resp, http.StatusUnauthorized, requestError.Message)
			return
		}

		ctx.Emit("closet:error", err)
		apiServerError(resp)
		return
	}

	apiJson(resp, http.StatusOK, map[string]string{
		"id":    user.ID,
		"email": user.Email,
	})
}

func (ctx *Closet) logoutHandler(resp http.ResponseWriter, req *http.Request) {
	if err := ctx.Session.SignOut(req.Context()); err != nil {
		ctx.Emit("closet:error", err)
		apiServerError(resp)
		return
	}

	resp.WriteHeader(http.StatusNoContent)
}

func (ctx *Closet) wardrobeHandler(resp http.ResponseWriter, req *http.Request) {
	garments, err := ctx.Wardrobe.Refresh(req.Context())
	if err != nil {
		ctx.handleError(resp, err)
		return
	}

	apiJson(resp, http.StatusOK, map[string]interface{}{
		"garments": garments,
	})
}

func (ctx *Closet) captureHandler(resp http.ResponseWriter, req *http.Request) {
	filename, photo, validationErrors := readPhoto(req)
	if validationErrors != nil {
		apiBadRequest(resp, validationErrors)
		return
	}

	capture := ctx.Captures.Start(filename, photo)

	apiJson(resp, http.StatusCreated, map[string]string{
		"id": capture.ID,
	})
}

func (ctx *Closet) calibrateHandler(resp http.ResponseWriter, req *http.Request) {
	var click Click
	validationErrors := validateCalibrateRequest(req, &click)
	if validationErrors != nil {
		apiBadRequest(resp, validationErrors)
		return
	}

	capture, err := ctx.Captures.Calibrate(mux.Vars(req)["id"], click)
	if err != nil {
		apiNotFound(resp, err.Error())
		return
	}

	apiJson(resp, http.StatusOK, map[string]interface{}{
		"id":        capture.ID,
		"lastClick": capture.LastClick,
	})
}

func (ctx *Closet) retakeHandler(resp http.ResponseWriter, req *http.Request) {
	if _, err := ctx.Captures.Find(mux.Vars(req)["id"]); err != nil {
		apiNotFound(resp, err.Error())
		return
	}

	ctx.Captures.Remove(mux.Vars(req)["id"])
	resp.WriteHeader(http.StatusNoContent)
}

func (ctx *Closet) confirmHandler(resp http.ResponseWriter, req *http.Request) {
	capture, err := ctx.Captures.Find(mux.Vars(req)["id"])
	if err != nil {
		apiNotFound(resp, err.Error())
		return
	}

	var garment *model.Garment
	// Calibration taps are preview-only, both modes run with the generic
	// calibration the stylist service defaults to.
	if req.URL.Query().Get("mode") == "quick" {
		garment, err = ctx.Scanner.ScanQuick(req.Context(), capture.Filename, capture.Photo)
	} else {
		garment, err = ctx.Scanner.ScanAccurate(req.Context(), capture.Filename, capture.Photo, hooks.Coordinates{})
	}

	if err != nil {
		ctx.handleError(resp, err)
		return
	}

	ctx.Captures.Remove(capture.ID)
	apiJson(resp, http.StatusCreated, garment)
}

func (ctx *Closet) skinToneHandler(resp http.ResponseWriter, req *http.Request) {
	filename, photo, validationErrors := readPhoto(req)
	if validationErrors != nil {
		apiBadRequest(resp, validationErrors)
		return
	}

	result, err := ctx.SkinTone.Analyze(req.Context(), filename, photo)
	if err != nil {
		ctx.handleError(resp, err)
		return
	}

	apiJson(resp, http.StatusOK, result)
}

type instantMatchPayload struct {
	ItemColor string `json:"item_color"`
}

func (ctx *Closet) instantMatchHandler(resp http.ResponseWriter, req *http.Request) {
	var payload instantMatchPayload
	validationErrors := validateInstantMatchRequest(req, &payload)
	if validationErrors != nil {
		apiBadRequest(resp, validationErrors)
		return
	}

	result, err := ctx.Recommender.InstantMatches(req.Context(), payload.ItemColor)
	if err != nil {
		ctx.handleError(resp, err)
		return
	}

	apiJson(resp, http.StatusOK, result)
}

func (ctx *Closet) weeklyPlanHandler(resp http.ResponseWriter, req *http.Request) {
	result, err := ctx.Recommender.WeeklyPlan(req.Context())
	if err != nil {
		ctx.handleError(resp, err)
		return
	}

	apiJson(resp, http.StatusOK, result)
}

func (ctx *Closet) handleError(resp http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, hooks.ErrNotAuthenticated):
		apiForbidden(resp, err.Error())
	case errors.Is(err, hooks.ErrNoSkinTone):
		apiError(resp, http.StatusConflict, err.Error())
	default:
		ctx.Emit("closet:error", err)
		apiServerError(resp)
	}
}

func validateCredentialsRequest(request *http.Request, payload *credentialsPayload) map[string][]string {
	return validateJsonRequest(request, payload, govalidator.MapData{
		"email":    {"required", "email"},
		"password": {"required", "min:6"},
	})
}

func validateCalibrateRequest(request *http.Request, payload *Click) map[string][]string {
	return validateJsonRequest(request, payload, govalidator.MapData{
		"x": {"required", "numeric"},
		"y": {"required", "numeric"},
	})
}

func validateInstantMatchRequest(request *http.Request, payload *instantMatchPayload) map[string][]string {
	return validateJsonRequest(request, payload, govalidator.MapData{
		"item_color": {"required"},
	})
}

func validateJsonRequest(request *http.Request, payload interface{}, rules govalidator.MapData) map[string][]string {
	validator := govalidator.New(govalidator.Options{
		Request:         request,
		Data:            payload,
		Rules:           rules,
		RequiredDefault: false,
	})
	validationResults := validator.ValidateJSON()

	if len(validationResults) != 0 {
		return validationResults
	}

	return nil
}

func readPhoto(request *http.Request) (string, []byte, map[string][]string) {
	_ = request.ParseMultipartForm(maxPhotoSize)

	file, header, err := request.FormFile("photo")
	if err != nil {
		return "", nil, map[string][]string{
			"photo": {"The photo field is required"},
		}
	}
	defer file.Close()

	photo, err := io.ReadAll(file)
	if err != nil || len(photo) == 0 {
		return "", nil, map[string][]string{
			"photo": {"Unable to read the uploaded photo"},
		}
	}

	return header.Filename, photo, nil
}
