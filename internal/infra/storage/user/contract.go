package user

import "github.com/m04kA/SMC-RentalService/pkg/txmanager"

// DBExecutor переиспользуем интерфейс из txmanager для работы с БД
// Ему удовлетворяют *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor
