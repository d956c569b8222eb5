package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed methods.yaml
var defaultMethods []byte

// MethodCapability describes how the processor handles one payment method type.
type MethodCapability struct {
	SupportSeparateCapture *bool `yaml:"supportSeparateCapture"`
	LineItems              bool  `yaml:"lineItems"`
}

// PaymentMethods is the read-only capability table keyed by method type.
type PaymentMethods struct {
	methods map[string]MethodCapability
}

type methodsFile struct {
	Methods map[string]MethodCapability `yaml:"methods"`
}

// LoadPaymentMethods reads the capability table from path, or the embedded
// defaults when path is empty. Methods named in lineItemMethods are flagged as
// requiring line items in addition to those marked in the file.
func LoadPaymentMethods(path string, lineItemMethods []string) (*PaymentMethods, error) {
	data := defaultMethods
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read methods file: %w", err)
		}
		data = b
	}
	return ParsePaymentMethods(data, lineItemMethods)
}

func ParsePaymentMethods(data []byte, lineItemMethods []string) (*PaymentMethods, error) {
	var f methodsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse methods file: %w", err)
	}

	methods := make(map[string]MethodCapability, len(f.Methods)+len(lineItemMethods))
	for name, capability := range f.Methods {
		methods[strings.ToLower(name)] = capability
	}
	for _, name := range lineItemMethods {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		capability := methods[name]
		capability.LineItems = true
		methods[name] = capability
	}
	return &PaymentMethods{methods: methods}, nil
}

// SupportsSeparateCapture defaults to true for methods the table does not know.
func (m *PaymentMethods) SupportsSeparateCapture(method string) bool {
	capability, ok := m.methods[strings.ToLower(method)]
	if !ok || capability.SupportSeparateCapture == nil {
		return true
	}
	return *capability.SupportSeparateCapture
}

// RequiresLineItems reports whether captures and payments for method must carry line items.
func (m *PaymentMethods) RequiresLineItems(method string) bool {
	return m.methods[strings.ToLower(method)].LineItems
}

// Names lists the configured method types in sorted order.
func (m *PaymentMethods) Names() []string {
	names := make([]string, 0, len(m.methods))
	for name := range m.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
