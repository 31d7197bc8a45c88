package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"
)

type Emitter interface {
	Emit(topic string, args ...interface{})
}

func NewServer(address string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:           address,
		ReadTimeout:    60 * time.Second,
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
		Handler:        handler,
	}
}

func StartServer(ctx context.Context, server *http.Server, logger slf.Logger) {
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting the server, HTTP on: :addr", wd.StringParam("addr", server.Addr))
		serverErr <- server.ListenAndServe()
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		logger.Emergency("Error in the server: :err", wd.ErrParam(err))
	case <-ctx.Done():
		logger.Info("Got stop signal, starting graceful shutdown")

		stopCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		_ = server.Shutdown(stopCtx)

		logger.Info("Graceful shutdown succeed, exiting")
	}
}

// CreateRequestEventsMiddleware publishes every request before and after it
// was handled. The after event carries the response status code.
func CreateRequestEventsMiddleware(emitter Emitter, prefix string) mux.MiddlewareFunc {
	beforeTopic := prefix + ":before_request"
	afterTopic := prefix + ":after_request"

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
			emitter.Emit(beforeTopic, req)

			recorder := &statusRecorder{ResponseWriter: resp, code: http.StatusOK}
			handler.ServeHTTP(recorder, req)

			emitter.Emit(afterTopic, req, recorder.code)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func NotFoundHandler(response http.ResponseWriter, _ *http.Request) {
	data, _ := json.Marshal(map[string]string{
		"status":  "404",
		"message": "Not Found",
	})

	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(http.StatusNotFound)
	_, _ = response.Write(data)
}

func apiJson(resp http.ResponseWriter, code int, data interface{}) {
	result, _ := json.Marshal(data)
	resp.Header().Set("Content-Type", "application/json")
	resp.WriteHeader(code)
	_, _ = resp.Write(result)
}

func apiBadRequest(resp http.ResponseWriter, errorsPerField map[string][]string) {
	apiJson(resp, http.StatusBadRequest, map[string]interface{}{
		"errors": errorsPerField,
	})
}

func apiError(resp http.ResponseWriter, code int, reason string) {
	apiJson(resp, code, map[string]interface{}{
		"error": reason,
	})
}

func apiNotFound(resp http.ResponseWriter, reason string) {
	apiError(resp, http.StatusNotFound, reason)
}

func apiForbidden(resp http.ResponseWriter, reason string) {
	apiError(resp, http.StatusForbidden, reason)
}

var internalServerError = []byte("Internal server error")

func apiServerError(resp http.ResponseWriter) {
	resp.Header().Set("Content-Type", "text/plain")
	resp.WriteHeader(http.StatusInternalServerError)
	_, _ = resp.Write(internalServerError)
}
