package console

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"venuebook/internal/domain"
)

// errorMessage maps an error to a user-facing message through its domain
// code. Errors without a code get the generic message.
func (c *Console) errorMessage(err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return c.t("errors."+code, nil)
	}
	return c.t("errors.generic", nil)
}

// fail reports err to the user. Store failures and unknown errors are
// logged as well.
func (c *Console) fail(err error) {
	var se *domain.StoreError
	if errors.As(err, &se) || domain.Code(err) == "" {
		log.WithError(err).Error("❌ Operation failed")
	}
	fmt.Fprintln(c.out, c.errorMessage(err))
}
