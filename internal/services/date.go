package services

import (
	"fmt"
	"time"

	"github.com/bilalayas/takipcim/internal/domain"
)

func validateDate(date string) error {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return nil
}
