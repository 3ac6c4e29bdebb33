package boltstore

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/state"
)

var (
	reservationsBucket = []byte("reservations")
	transactionsBucket = []byte("transactions")
)

// Backend хранит состояние во встроенной базе BoltDB.
// Каждое сохранение пересоздает оба бакета в одной транзакции записи.
type Backend struct {
	db *bolt.DB
}

// Open открывает (или создает) файл базы и гарантирует наличие бакетов
func Open(path string) (*Backend, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(reservationsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(transactionsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}

	return &Backend{db: db}, nil
}

func (b *Backend) Name() string {
	return "bolt"
}

// Close освобождает блокировку файла базы
func (b *Backend) Close() error {
	return b.db.Close()
}

// Load читает оба бакета; ключи упорядочены по id
func (b *Backend) Load(_ context.Context) (*state.State, error) {
	s := state.New()

	err := b.db.View(func(tx *bolt.Tx) error {
		rb := tx.Bucket(reservationsBucket)
		tb := tx.Bucket(transactionsBucket)
		if rb == nil || tb == nil {
			return ErrBucketMissing
		}

		if err := rb.ForEach(func(_, v []byte) error {
			var rec reservationRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
			}
			r, err := rec.toDomain()
			if err != nil {
				return err
			}
			s.Reservations = append(s.Reservations, r)
			return nil
		}); err != nil {
			return err
		}

		return tb.ForEach(func(_, v []byte) error {
			var rec transactionRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
			}
			t, err := rec.toDomain()
			if err != nil {
				return err
			}
			s.Transactions = append(s.Transactions, t)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Save заменяет содержимое бакетов; bolt фиксирует транзакцию атомарно
func (b *Backend) Save(_ context.Context, s *state.State) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{reservationsBucket, transactionsBucket} {
			if err := tx.DeleteBucket(name); err != nil && err != bolt.ErrBucketNotFound {
				return err
			}
		}
		rb, err := tx.CreateBucket(reservationsBucket)
		if err != nil {
			return err
		}
		tb, err := tx.CreateBucket(transactionsBucket)
		if err != nil {
			return err
		}

		for i := range s.Reservations {
			data, err := json.Marshal(toReservationRecord(&s.Reservations[i]))
			if err != nil {
				return err
			}
			if err := rb.Put(itob(s.Reservations[i].ID), data); err != nil {
				return err
			}
		}
		for i := range s.Transactions {
			data, err := json.Marshal(toTransactionRecord(&s.Transactions[i]))
			if err != nil {
				return err
			}
			if err := tb.Put(itob(s.Transactions[i].ID), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// itob кодирует id в big-endian, чтобы обход курсором шел по возрастанию
func itob(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}
