package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authDomain "github.com/Santosha2001/ecommerce/internal/auth/domain"
	authUseCase "github.com/Santosha2001/ecommerce/internal/auth/usecase"
	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
	"github.com/Santosha2001/ecommerce/internal/httputil"
	"github.com/Santosha2001/ecommerce/internal/metrics"
)

// PipelineMiddleware runs the authentication and authorization pipeline for
// every request.
//
// The middleware:
//  1. Resolves the principal from the Authorization header. Absent, malformed,
//     forged and expired tokens all resolve to anonymous; the request is not
//     rejected at this stage.
//  2. Stores a resolved principal in the request context for handlers.
//  3. Evaluates the route access policy and short-circuits with 401 or 403
//     when the decision denies the request.
//
// A verified token whose subject no longer exists yields 404, and a failing
// user directory yields 500, both before policy evaluation.
//
// businessMetrics may be nil.
func PipelineMiddleware(
	authenticator authUseCase.Authenticator,
	policy *authDomain.Policy,
	businessMetrics *metrics.BusinessMetrics,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := authenticator.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			logger.Debug("identity resolution failed",
				slog.String("path", c.Request.URL.Path),
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		if principal != nil {
			ctx := WithPrincipal(c.Request.Context(), principal)
			c.Request = c.Request.WithContext(ctx)
		}

		decision := policy.Decide(c.Request.Method, c.Request.URL.Path, principal)
		businessMetrics.RecordAuthDecision(c.Request.Context(), decision.String())

		switch decision {
		case authDomain.DecisionUnauthenticated:
			logger.Debug("access denied: authentication required",
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path))
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
		case authDomain.DecisionForbidden:
			logger.Debug("access denied: insufficient role",
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("principal", principal.Email))
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
		default:
			c.Next()
		}
	}
}
