package services

import "strconv"

const (
	PropertyArmstrong = "armstrong"
	PropertyOdd       = "odd"
	PropertyEven      = "even"
)

// IsPrime reports whether n is prime using trial division up to floor(sqrt(n)).
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for i := int64(2); i <= n/i; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// IsPerfect reports whether the proper divisors of n sum to n.
// n itself is never part of the divisor set, so 1 is not perfect.
func IsPerfect(n int64) bool {
	if n < 2 {
		return false
	}

	divisors := map[int64]struct{}{1: {}}
	for i := int64(2); i <= n/i; i++ {
		if n%i == 0 {
			divisors[i] = struct{}{}
			divisors[n/i] = struct{}{}
		}
	}

	var sum int64
	for d := range divisors {
		if sum > n-d {
			return false
		}
		sum += d
	}
	return sum == n
}

// IsArmstrong reports whether n equals the sum of its decimal digits each
// raised to the number of digits. Negative numbers never qualify.
func IsArmstrong(n int64) bool {
	if n < 0 {
		return false
	}

	digits := strconv.FormatInt(n, 10)
	power := len(digits)

	var sum int64
	for _, r := range digits {
		term := pow(int64(r-'0'), power)
		if sum > n-term {
			return false
		}
		sum += term
	}
	return sum == n
}

// Parity returns "odd" or "even". Go's remainder keeps the sign of n, so a
// negative odd number yields -1 and is still classified as odd.
func Parity(n int64) string {
	if n%2 != 0 {
		return PropertyOdd
	}
	return PropertyEven
}

// DigitSum returns the sum of the decimal digits of |n|.
func DigitSum(n int64) int {
	sum := 0
	for _, r := range strconv.FormatInt(n, 10) {
		if r == '-' {
			continue
		}
		sum += int(r - '0')
	}
	return sum
}

// Properties returns the descriptive tags for n: "armstrong" when it applies,
// always followed by exactly one parity tag.
func Properties(n int64) []string {
	props := make([]string, 0, 2)
	if IsArmstrong(n) {
		props = append(props, PropertyArmstrong)
	}
	return append(props, Parity(n))
}

// pow is only called with a single digit base and an exponent of at most 19,
// which fits in an int64.
func pow(base int64, exp int) int64 {
	result := int64(1)
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
