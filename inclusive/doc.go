// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package inclusive scans text for non-inclusive phrases.
//
// A Rule lists phrase variants, suggested alternatives, a score and a
// feedback template. The Engine tokenizes the text once, finds every token
// window equal to a phrase, lets the rule's Exception veto candidates, and
// reports surviving matches per rule. Rules without matches are left out of
// the result.
//
// # Rule Sets
//
// Rules are grouped into categories and registered into an immutable RuleSet:
//
//	rules, err := inclusive.Register(inclusive.Category{
//	    Name:         "disability",
//	    LearnMoreURL: "/docs/inclusive-language#disability",
//	    Rules:        []inclusive.Rule{...},
//	})
//
// DefaultRules returns the built-in table; LoadRules reads one from YAML.
//
// # Feedback Templates
//
// FeedbackFormat may contain %1$s, replaced by the phrase as written in the
// text, and %2$s, replaced by the alternatives. Any HTML in templates or
// alternatives is passed through untouched.
package inclusive
