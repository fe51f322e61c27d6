package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const unitOfWorkKey = "unit_of_work"

// UnitOfWork pins one pooled connection for the lifetime of the request and
// exposes it through UoW. The connection goes back to the pool when the
// handler chain returns, whatever the outcome. A nil db (in-memory store)
// makes this a no-op.
func UnitOfWork(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.Next()
			return
		}
		err := db.WithContext(c.Request.Context()).Connection(func(conn *gorm.DB) error {
			c.Set(unitOfWorkKey, conn)
			c.Next()
			return nil
		})
		if err != nil {
			// the pool could not hand out a connection; nothing downstream ran
			_ = c.Error(err)
			c.Abort()
		}
	}
}

// UoW returns the request's unit of work, or nil when none is bound.
func UoW(c *gin.Context) *gorm.DB {
	v, ok := c.Get(unitOfWorkKey)
	if !ok {
		return nil
	}
	db, _ := v.(*gorm.DB)
	return db
}
