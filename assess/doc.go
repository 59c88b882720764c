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

// Package assess scores how well a title carries its keyphrase.
//
// The TitleAssessor runs three checks in order and stops at the first success:
//   - Exact match: the keyphrase, with punctuation stripped, occurs in the title
//   - Raw match: the keyphrase occurs as written (keeps "example.com" intact)
//   - Coverage: every content word occurs in the title in one of its
//     morphological forms
//
// Quoted keyphrases ("kitchen sink") ask for literal matching and skip the
// coverage check. Assessment never fails: collaborator errors are logged and
// resolve to a negative result.
package assess
