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

// Package openai asks an OpenAI-compatible chat model for word inflections.
//
// The model is prompted in JSON mode. Responses are stripped of code fences,
// repaired for the most common formatting slips, and parsed; failed calls
// are retried with exponential backoff.
//
// # Usage
//
//	cfg := openai.NewConfig(
//	    openai.WithHost("http://localhost:11434"),
//	    openai.WithModel("qwen2.5:3b"),
//	)
//	provider, err := openai.NewProvider(cfg)
//	forms, err := provider.TopicForms(ctx, "kitchen sink", "en")
//
// Any server speaking the OpenAI chat API works (Ollama, LocalAI, vLLM).
package openai
