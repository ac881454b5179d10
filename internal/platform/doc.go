// Package platform smooths over filesystem differences between Unix and
// Windows hosts. The registry file may live on either.
package platform
