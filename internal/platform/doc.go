// Package platform contains OS integration: locating and creating the
// application data directory.
package platform
