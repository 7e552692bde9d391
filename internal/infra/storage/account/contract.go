package account

import (
	"github.com/m04kA/barberbook/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
