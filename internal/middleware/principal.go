package middleware

import (
	"github.com/wb-go/wbf/ginext"
)

const principalHeader = "X-Remote-User"

// Principal extracts the authenticated username the fronting proxy put on
// the request. Handlers that mutate state reject an empty principal.
func Principal() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if user := c.GetHeader(principalHeader); user != "" {
			c.Set("principal", user)
		}

		c.Next()
	}
}
