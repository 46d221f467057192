// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the UMBRA transcript.
//
// # Key Types
//
//   - Message: a single immutable transcript line with kind, content and time
//   - Kind: message kind enumeration (user, system, umbra)
//   - Transcript: append-only ordered log that assigns monotonic message IDs
//
// # Usage
//
//	log := model.NewTranscript()
//	log.Append(model.KindSystem, "UMBRA OS v2.1.0 - Initializing...", time.Now())
//	for _, msg := range log.Messages() {
//	    fmt.Println(msg.FormatTime(), msg.Kind.Tag(), msg.Content)
//	}
package model
