// SPDX-License-Identifier: MIT

package job

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
)

// Encode renders the report as indented JSON.
func (r *Report) Encode() ([]byte, error) {
	data, err := sonic.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}

	return append(data, '\n'), nil
}

// Write encodes the report to w.
func (r *Report) Write(w io.Writer) error {
	data, err := r.Encode()
	if err != nil {
		return err
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// WriteFile encodes the report to path.
func (r *Report) WriteFile(path string) error {
	data, err := r.Encode()
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// DecodeReport parses a report produced by Encode.
func DecodeReport(data []byte) (*Report, error) {
	var r Report
	if err := sonic.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	return &r, nil
}
