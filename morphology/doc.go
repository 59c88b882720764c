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

// Package morphology defines the collaborator that expands keyphrase words into
// their morphological forms for partial-match coverage.
//
// The assessors only consume forms; they never generate them. Implementations
// live in sub-packages and in this package:
//
//   - DictionaryProvider: forms looked up in a storage.FormsRepository
//   - morphology/snowball: stemmer-driven forms for languages snowball supports
//   - morphology/openai: forms generated by an OpenAI-compatible chat model
//   - morphology/mock: deterministic test double
//
// # Usage Example
//
//	provider := snowball.NewProvider()
//	forms, err := provider.TopicForms(ctx, "kitchen sink", "en_US")
//	if errors.Is(err, morphology.ErrUnsupportedLocale) {
//	    // coverage falls back to "not all words found"
//	}
package morphology
