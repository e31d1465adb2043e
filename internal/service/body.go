// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "encoding/json"

// InterpretBody extracts the MJML document from a request body. It never
// fails.
//
// Two payload shapes are accepted:
//   - a JSON object {"mjml": "<mjml>...</mjml>"}; the mjml field is the
//     document. An object without a string mjml field yields "";
//   - anything else (plain MJML, or JSON that is not an object) is the
//     document verbatim.
func InterpretBody(raw []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil || payload == nil {
		return string(raw)
	}

	var doc string
	if err := json.Unmarshal(payload["mjml"], &doc); err != nil {
		return ""
	}
	return doc
}
