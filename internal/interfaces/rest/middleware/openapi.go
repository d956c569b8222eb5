package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/interfaces/rest"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

// OpenAPIValidator rejects requests that do not match the OpenAPI document.
// Requests for routes the document does not describe pass through untouched.
func OpenAPIValidator(doc *openapi3.T, logger *slog.Logger) (func(http.Handler) http.Handler, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) {
					next.ServeHTTP(w, r)
					return
				}
				// Known path, unsupported method.
				rest.WriteError(w, &application.ServiceError{
					Code:       application.ErrCodeInvalidOperation,
					Message:    err.Error(),
					HTTPStatus: http.StatusMethodNotAllowed,
				}, logger)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				rest.WriteError(w, application.NewInvalidJSONInputError(err.Error(), err), logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}
