// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package web embeds the admin page and HTML fragment templates.
package web

import "embed"

//go:embed static templates
var FS embed.FS
