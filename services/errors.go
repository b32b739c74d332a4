package services

import (
	"errors"
	"fmt"
)

// ชนิดความผิดพลาดหลัก — controller ใช้ errors.Is เทียบเพื่อ map เป็น status code
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// sentinel ราย case (ห่อชนิดหลักไว้ให้ตรวจทั้งแบบเจาะจงและแบบกว้าง)
var (
	ErrDishNotFound         = fmt.Errorf("dish %w", ErrNotFound)
	ErrExtraNotFound        = fmt.Errorf("dish extra %w", ErrNotFound)
	ErrOrderNotFound        = fmt.Errorf("order %w", ErrNotFound)
	ErrCouponNotFound       = fmt.Errorf("coupon %w", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)

	ErrAlreadyLiked   = fmt.Errorf("dish already liked: %w", ErrConflict)
	ErrCouponUsed     = fmt.Errorf("coupon already used or deactivated: %w", ErrConflict)
	ErrCouponExpired  = fmt.Errorf("coupon expired: %w", ErrConflict)
	ErrCouponExists   = fmt.Errorf("coupon code already exists: %w", ErrConflict)
	ErrOrderCompleted = fmt.Errorf("order already completed: %w", ErrConflict)
	ErrEmailTaken     = fmt.Errorf("email already registered: %w", ErrConflict)

	ErrEmptyOrder       = fmt.Errorf("order has no items: %w", ErrValidation)
	ErrInvalidDateRange = fmt.Errorf("start date is after end date: %w", ErrValidation)
)
