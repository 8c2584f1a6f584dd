package utils

import (
	"errors"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// MaxID is the largest id a BIGINT primary key can hold.
const MaxID = math.MaxInt64

var (
	ErrEmptyParameter = errors.New("empty parameter")
	ErrInvalidID      = errors.New("id must be a positive integer")
	ErrIDOutOfRange   = errors.New("id exceeds the largest stored id")
)

// ParseIDParam parses a positive integer path parameter. Well-formed ids above
// MaxID fail with ErrIDOutOfRange since no row can carry them.
func ParseIDParam(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	if idStr == "" {
		return 0, ErrEmptyParameter
	}
	idUint64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || idUint64 == 0 {
		return 0, ErrInvalidID
	}
	if idUint64 > MaxID {
		return 0, ErrIDOutOfRange
	}
	return uint(idUint64), nil
}

func ParseQueryUintParam(c *gin.Context, param string) (uint, error) {
	valStr := c.Query(param)
	if valStr == "" {
		return 0, ErrEmptyParameter
	}
	valUint64, err := strconv.ParseUint(valStr, 10, 63)
	return uint(valUint64), err
}

// ParseQueryIntParam returns fallback when the parameter is absent.
func ParseQueryIntParam(c *gin.Context, param string, fallback int) (int, error) {
	valStr := c.Query(param)
	if valStr == "" {
		return fallback, nil
	}
	return strconv.Atoi(valStr)
}
