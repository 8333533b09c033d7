// Package membership описывает граф допустимых переходов между уровнями
// членства и фильтрацию каталога по текущему уровню пользователя.
package membership

import "github.com/pribylovaa/party-one/internal/models"

// Названия уровней.
const (
	Silver    = "Silver"
	Gold      = "Gold"
	Platinum  = "Platinum"
	Amethyst  = "Amethyst"
	Solitaire = "Solitaire"
)

// upgrades — фиксированная таблица допустимых целей для текущего уровня.
// Amethyst — «боковой» уровень: доступен из любого и ведёт в Gold.
var upgrades = map[string][]string{
	Silver:    {Gold, Platinum, Amethyst, Solitaire},
	Gold:      {Platinum, Amethyst, Solitaire},
	Platinum:  {Amethyst, Solitaire},
	Solitaire: {Amethyst},
	Amethyst:  {Gold, Platinum, Solitaire},
}

// Known сообщает, является ли имя одним из пяти уровней.
func Known(name string) bool {
	_, ok := upgrades[name]
	return ok
}

// Allowed возвращает допустимые цели перехода. Для пустого или
// неизвестного уровня restricted=false: доступен весь каталог.
func Allowed(current string) (targets []string, restricted bool) {
	t, ok := upgrades[current]
	if !ok {
		return nil, false
	}

	out := make([]string, len(t))
	copy(out, t)

	return out, true
}

// CanUpgrade сообщает, можно ли перейти с current на target.
func CanUpgrade(current, target string) bool {
	targets, restricted := Allowed(current)
	if !restricted {
		return true
	}

	for _, name := range targets {
		if name == target {
			return true
		}
	}

	return false
}

// FilterAvailable возвращает записи каталога, доступные пользователю с
// уровнем current, сохраняя порядок каталога. Пустой или неизвестный
// уровень возвращает весь каталог.
func FilterAvailable(current string, all []models.Membership) []models.Membership {
	if _, restricted := Allowed(current); !restricted {
		out := make([]models.Membership, len(all))
		copy(out, all)
		return out
	}

	out := make([]models.Membership, 0, len(all))
	for _, m := range all {
		if CanUpgrade(current, m.Name) {
			out = append(out, m)
		}
	}

	return out
}

// RequiresCabinCrew — для Amethyst заявка содержит документы бортпроводника
// и явный выбор плана.
func RequiresCabinCrew(name string) bool {
	return name == Amethyst
}
