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

package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/prosecheck/core"
	"github.com/poiesic/prosecheck/morphology"
	"github.com/poiesic/prosecheck/text"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Provider implements morphology.Provider using an OpenAI-compatible chat API.
type Provider struct {
	client llms.Model
	config *Config
	logger *slog.Logger
}

var _ morphology.Provider = (*Provider)(nil)

// wordForms and formsResponse match the JSON the model is asked to produce.
type wordForms struct {
	Word  string   `json:"word"`
	Forms []string `json:"forms"`
}

type formsResponse struct {
	Words []wordForms `json:"words"`
}

// Option configures a Provider.
type Option func(*Provider) error

// WithClient sets the chat model directly instead of dialing config.Host.
func WithClient(client llms.Model) Option {
	return func(p *Provider) error {
		if client == nil {
			return errors.New("client cannot be nil")
		}
		p.client = client
		return nil
	}
}

// WithLogger sets the logger for the provider.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		p.logger = logger
		return nil
	}
}

// NewProvider creates an LLM-backed morphology provider.
// The config is validated and normalized before use.
func NewProvider(config *Config, opts ...Option) (*Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	p := &Provider{
		config: config,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	p.logger = p.logger.With("component", "openai-morphology")

	if p.client == nil {
		client, err := openai.New(
			openai.WithBaseURL(config.Host),
			openai.WithToken(config.Token),
			openai.WithModel(config.Model),
		)
		if err != nil {
			return nil, err
		}
		p.client = client
	}
	return p, nil
}

// TopicForms implements morphology.Provider.
// Words the model omits contribute only themselves.
func (p *Provider) TopicForms(ctx context.Context, keyphrase, locale string) (*core.TopicForms, error) {
	words := morphology.ContentWords(keyphrase, locale)
	if len(words) == 0 {
		return &core.TopicForms{KeyphraseForms: [][]string{}}, nil
	}

	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(buildSystemPrompt(locale))},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(buildUserPrompt(words))},
		},
	}

	var parsed formsResponse
	err := retryWithBackoff(ctx, p.logger, func() error {
		response, err := p.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			return err
		}
		if len(response.Choices) < 1 {
			return ErrEmptyResponse
		}

		responseText := repairJSON(stripCodeFence(response.Choices[0].Content))
		var result formsResponse
		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			p.logger.Debug("unparseable model response", "response", responseText)
			return err
		}
		parsed = result
		return nil
	}, p.config.MaxAttempts, p.config.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	byWord := make(map[string][]string, len(parsed.Words))
	for _, entry := range parsed.Words {
		key := text.Lower(strings.TrimSpace(entry.Word), locale)
		for _, form := range entry.Forms {
			form = text.Lower(strings.TrimSpace(form), locale)
			if form != "" && !strings.ContainsFunc(form, isSpace) {
				byWord[key] = append(byWord[key], form)
			}
		}
	}

	forms := make([][]string, 0, len(words))
	for _, word := range words {
		forms = append(forms, morphology.NewWordForms(word, byWord[word]...))
	}

	p.logger.Debug("generated topic forms", "words", len(words), "answered", len(parsed.Words))
	return &core.TopicForms{KeyphraseForms: forms}, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}
