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

// Package storage provides the storage abstraction for the morphology dictionary.
//
// The dictionary holds morphological forms per (locale, word). It is input to
// the title assessor's coverage check, never a store of assessment results.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return the storage interfaces to
// keep callers decoupled from the backend:
//
//	repo, err := badger.NewFormsRepository(backend)  // returns storage.FormsRepository
//
// # Usage
//
// Open a persistent dictionary:
//
//	backend, err := badger.OpenBackend("/path/to/dict", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//	repo, err := badger.NewFormsRepository(backend)
//
// Use in tests with in-memory storage:
//
//	repo, backend, err := badger.NewMemoryFormsRepository()
//
// # Serialization
//
// Entries are encoded with mus-go primitives (see MarshalWordForms).
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage
