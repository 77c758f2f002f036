package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the castings table when it does not exist yet. Column
// names match files written by earlier releases, so an existing castings.db
// is picked up unchanged.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS castings (
		ID INTEGER PRIMARY KEY AUTOINCREMENT,
		Наименование_отливки TEXT,
		Исполнитель1 TEXT,
		Исполнитель2 TEXT,
		Контролер1 TEXT,
		Контролер2 TEXT,
		Контроль_подано INTEGER,
		Контроль_дата_приемки DATE,
		Контроль_принято INTEGER,
		Второй_сорт_раковины INTEGER,
		Второй_сорт_зарез INTEGER,
		Второй_сорт_прочее INTEGER,
		Доработка_лапы INTEGER,
		Доработка_питатель INTEGER,
		Доработка_корона INTEGER,
		Окончательный_брак_Недолив INTEGER,
		Окончательный_брак_Вырыв INTEGER,
		Окончательный_брак_Зарез INTEGER,
		Окончательный_брак_Коробление INTEGER,
		Окончательный_брак_Наплыв_металла INTEGER,
		Окончательный_брак_Нарушение_геометрии INTEGER,
		Окончательный_брак_Нарушение_маркировки INTEGER,
		Окончательный_брак_Непроклей INTEGER,
		Окончательный_брак_Неслитина INTEGER,
		Окончательный_брак_Несоответствие_внешнего_вида INTEGER,
		Окончательный_брак_Несоответствие_размеров INTEGER,
		Окончательный_брак_Пеномодель INTEGER,
		Окончательный_брак_Пористость INTEGER,
		Окончательный_брак_Пригар_песка INTEGER,
		Окончательный_брак_Рыхлота INTEGER,
		Окончательный_брак_Раковины INTEGER,
		Окончательный_брак_Скол INTEGER,
		Окончательный_брак_Слом INTEGER,
		Окончательный_брак_Спай INTEGER,
		Окончательный_брак_Трещины INTEGER,
		Окончательный_брак_Прочее INTEGER,
		Примечание TEXT
	)`,
}
