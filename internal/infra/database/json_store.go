package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"payment-registry/internal/domain"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fastjson"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONStore keeps the whole payment table in one pretty-printed JSON file.
// Every read parses the file again and every write replaces it, so two
// overlapping read-modify-write cycles end with the last writer winning.
// Writes go to a temp file that is renamed over the table, so readers see
// either the previous or the next table, never a partial one.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) LoadAll(ctx context.Context) (domain.Table, error) {
	if err := s.ensureFile(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, s.storageErr("read", err)
	}
	table, err := decodeTable(data)
	if err != nil {
		return nil, s.storageErr("decode", err)
	}
	return table, nil
}

func (s *JSONStore) SaveAll(ctx context.Context, table domain.Table) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	if table == nil {
		table = domain.Table{}
	}
	data, err := json.MarshalIndent(table, "", "    ")
	if err != nil {
		return s.storageErr("encode", err)
	}
	return s.replace(data)
}

func (s *JSONStore) LoadOne(ctx context.Context, id string) (domain.Payment, error) {
	table, err := s.LoadAll(ctx)
	if err != nil {
		return domain.Payment{}, err
	}
	p, ok := table[id]
	if !ok {
		return domain.Payment{}, fmt.Errorf("%w: %s", domain.ErrPaymentNotFound, id)
	}
	return p, nil
}

func (s *JSONStore) Exists(ctx context.Context, id string) (bool, error) {
	table, err := s.LoadAll(ctx)
	if err != nil {
		return false, err
	}
	_, ok := table[id]
	return ok, nil
}

// SaveOne rewrites the whole file with id set to payment.
func (s *JSONStore) SaveOne(ctx context.Context, id string, payment domain.Payment) error {
	table, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}
	table[id] = payment
	return s.SaveAll(ctx, table)
}

func (s *JSONStore) ensureDir() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return s.storageErr("create directory", err)
	}
	return nil
}

func (s *JSONStore) ensureFile() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return s.storageErr("stat", err)
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	tmpPath, err := s.writeTemp([]byte("{}"))
	if err != nil {
		return err
	}
	defer os.Remove(tmpPath)

	// Link fails instead of overwriting when a writer got there first.
	if err := os.Link(tmpPath, s.path); err != nil && !errors.Is(err, os.ErrExist) {
		return s.storageErr("create", err)
	}
	return nil
}

func (s *JSONStore) replace(data []byte) error {
	tmpPath, err := s.writeTemp(data)
	if err != nil {
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return s.storageErr("rename", err)
	}
	return nil
}

// writeTemp writes data to a fresh file next to the table and returns its path.
func (s *JSONStore) writeTemp(data []byte) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return "", s.storageErr("create temp", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", s.storageErr("write", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", s.storageErr("chmod", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", s.storageErr("write", err)
	}
	return tmpPath, nil
}

func (s *JSONStore) storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", domain.ErrStorage, op, s.path, err)
}

func decodeTable(data []byte) (domain.Table, error) {
	var p fastjson.Parser
	root, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	obj, err := root.Object()
	if err != nil {
		return nil, err
	}

	table := make(domain.Table, obj.Len())
	var decodeErr error
	obj.Visit(func(key []byte, v *fastjson.Value) {
		if decodeErr != nil {
			return
		}
		payment, err := decodePayment(v)
		if err != nil {
			decodeErr = fmt.Errorf("payment %q: %w", key, err)
			return
		}
		table[string(key)] = payment
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return table, nil
}

func decodePayment(v *fastjson.Value) (domain.Payment, error) {
	if v.Type() != fastjson.TypeObject {
		return domain.Payment{}, fmt.Errorf("expected object, got %s", v.Type())
	}
	amount, err := requireField(v, "amount").Float64()
	if err != nil {
		return domain.Payment{}, fmt.Errorf("amount: %w", err)
	}
	method, err := requireField(v, "payment_method").StringBytes()
	if err != nil {
		return domain.Payment{}, fmt.Errorf("payment_method: %w", err)
	}
	status, err := requireField(v, "status").StringBytes()
	if err != nil {
		return domain.Payment{}, fmt.Errorf("status: %w", err)
	}
	return domain.Payment{
		Amount:        amount,
		PaymentMethod: string(method),
		Status:        domain.Status(status),
	}, nil
}

var missingField = fastjson.MustParse("null")

func requireField(v *fastjson.Value, key string) *fastjson.Value {
	if field := v.Get(key); field != nil {
		return field
	}
	return missingField
}
