// Copyright (C) 2025 Meteor Madness (hello@meteormadness.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"fmt"
	"log"
)

// printJSON writes a result to stdout as indented JSON, the only output
// format the CLI produces so it pipes cleanly into jq.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Error encoding result: %v", err)
	}
	fmt.Println(string(out))
}

// optionalFlag returns a pointer only when the flag was set, so unset
// flags fall through to the model defaults.
func optionalFlag(changed bool, value float64) *float64 {
	if !changed {
		return nil
	}
	return &value
}
