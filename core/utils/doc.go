// Package utils holds small helpers shared across handlers, currently the
// forgiving query-parameter parsers ToInt and ToBool.
package utils
