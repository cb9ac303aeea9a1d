package middleware

import "github.com/gin-gonic/gin"

// employeeIDKey is the key used to store the authenticated employee's ID in
// the request context. roleKey holds the role claim from the token.
const (
	employeeIDKey = contextKey("employeeID")
	roleKey       = contextKey("employeeRole")
)

// GetEmployeeIDFromContext retrieves the authenticated employee ID from the
// Gin context. It returns the ID and a boolean indicating if it was found.
func GetEmployeeIDFromContext(c *gin.Context) (string, bool) {
	idVal, exists := c.Get(string(employeeIDKey))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(employeeIDKey)
		if ctxVal != nil {
			return ctxVal.(string), true
		}
		return "", false
	}

	employeeID, ok := idVal.(string)
	if !ok {
		return "", false
	}

	return employeeID, true
}

// GetRoleFromContext retrieves the token's role claim from the Gin context.
// Policy decisions re-read the employee row; this is only a hint for routing
// and logging.
func GetRoleFromContext(c *gin.Context) (string, bool) {
	roleVal := c.Request.Context().Value(roleKey)
	if roleVal == nil {
		return "", false
	}
	role, ok := roleVal.(string)
	return role, ok
}
