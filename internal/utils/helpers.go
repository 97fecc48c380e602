package utils

import (
	"math"
	"strconv"
	"strings"
)

func StringToInt(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func StringToFloat64(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func IntToString(i int) string {
	return strconv.Itoa(i)
}

func Float64ToString(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// RoundCurrency rounds a monetary amount to 2 decimal places using
// half-away-from-zero rounding.
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}

func TrimAndLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// JoinImagePaths flattens uploaded attachment references into the
// comma-delimited form stored on a claim record.
func JoinImagePaths(paths []string) string {
	return strings.Join(paths, ImagePathDelimiter)
}

// SplitImagePaths is the inverse of JoinImagePaths; an empty stored value
// yields no paths.
func SplitImagePaths(stored string) []string {
	if strings.TrimSpace(stored) == "" {
		return nil
	}
	return strings.Split(stored, ImagePathDelimiter)
}
