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

package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/prosecheck/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return core.ID(id), nil
}

// MarshalWordForms serializes a dictionary entry to bytes.
// Layout: locale, word, form count, forms.
func MarshalWordForms(forms *core.WordForms) []byte {
	size := ord.String.Size(forms.Locale) +
		ord.String.Size(forms.Word) +
		varint.Int.Size(len(forms.Forms))
	for _, form := range forms.Forms {
		size += ord.String.Size(form)
	}

	buf := make([]byte, size)
	n := ord.String.Marshal(forms.Locale, buf)
	n += ord.String.Marshal(forms.Word, buf[n:])
	n += varint.Int.Marshal(len(forms.Forms), buf[n:])
	for _, form := range forms.Forms {
		n += ord.String.Marshal(form, buf[n:])
	}
	return buf
}

// UnmarshalWordForms deserializes a dictionary entry from bytes.
func UnmarshalWordForms(data []byte) (*core.WordForms, error) {
	locale, n, err := ord.String.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: locale: %w", ErrSerializationFailed, err)
	}
	offset := n

	word, n, err := ord.String.Unmarshal(data[offset:])
	if err != nil {
		return nil, fmt.Errorf("%w: word: %w", ErrSerializationFailed, err)
	}
	offset += n

	count, n, err := varint.Int.Unmarshal(data[offset:])
	if err != nil {
		return nil, fmt.Errorf("%w: form count: %w", ErrSerializationFailed, err)
	}
	offset += n

	// Every form takes at least one byte for its length prefix
	if count < 0 || count > len(data)-offset {
		return nil, ErrTruncatedData
	}

	forms := make([]string, 0, count)
	for i := 0; i < count; i++ {
		form, n, err := ord.String.Unmarshal(data[offset:])
		if err != nil {
			return nil, fmt.Errorf("%w: form %d: %w", ErrSerializationFailed, i, err)
		}
		offset += n
		forms = append(forms, form)
	}

	return &core.WordForms{
		Locale: locale,
		Word:   word,
		Forms:  forms,
	}, nil
}
