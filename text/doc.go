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

// Package text provides the locale-aware string primitives the assessors are built on.
//
// The package contains:
//   - Tokenize: boundary-policy driven word splitting
//   - ConsistsOnlyOfFunctionWords and FunctionWords: function-word detection
//   - ParseExactMatchRequest: quoted keyphrase detection
//   - Locate: whole-word, case- and diacritic-insensitive phrase search
//   - NormalizePosition: collapses leading function words to position 0
//
// Every function is pure. Function-word lists are always passed in by the caller;
// the built-in lists returned by FunctionWords are copies.
package text
