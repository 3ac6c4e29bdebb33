package reservation

import "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/state"

// Snapshotter источник зафиксированного состояния для чтения вне транзакции
type Snapshotter = state.Snapshotter
