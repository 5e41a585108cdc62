// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements consumers of the measured layout guides:
// widgets that constrain their content to the readable content width
// or to the layout margins of the enclosing measuring view.
package widget
