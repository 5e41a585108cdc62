// SPDX-License-Identifier: Unlicense OR MIT

//go:build !android && !ios
// +build !android,!ios

package app

// GuidesSupported reports whether the target platform exposes native
// layout margin and readable content guides.
const GuidesSupported = false
