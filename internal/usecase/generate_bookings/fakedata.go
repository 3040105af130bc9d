package generate_bookings

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Пулы правдоподобных французских данных для сгенерированных бронирований
var (
	fakeLastNames = []string{
		"Lefebvre", "Martin", "Bernard", "Dubois", "Thomas",
		"Robert", "Richard", "Petit", "Durand", "Leroy",
	}

	fakeFirstNames = []string{
		"Alice", "Benjamin", "Chloé", "David", "Eva",
		"François", "Gabrielle", "Hugo", "Inès", "Jules",
	}

	fakeClasses = []string{"PS", "MS", "GS", "CP", "CE1", "CE2", "CM1", "CM2"}

	fakeCommunes = []string{
		"Lille", "Roubaix", "Tourcoing", "Villeneuve d'Ascq",
		"Marcq-en-Barœul", "Lambersart",
	}

	fakeSchoolNames = []string{
		"École Pasteur", "École Victor Hugo", "École Jules Ferry",
		"École Jean Jaurès", "Groupe Scolaire Saint-Exupéry",
	}

	fakeBusNotes = []string{
		"Départ de l'école à 8h30, retour prévu en fin de journée.",
		"Bus à prévoir pour l'aller-retour, environ 30 minutes de trajet.",
		"Merci de confirmer l'horaire du bus une semaine avant la sortie.",
	}
)

// fakeContact сгенерированные контактные данные преподавателя
type fakeContact struct {
	TeacherName string
	PhoneNumber string
	Email       string
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.IntN(len(pool))]
}

// newFakeContact собирает согласованные имя, телефон и email
func newFakeContact(rng *rand.Rand) fakeContact {
	first := pick(rng, fakeFirstNames)
	last := pick(rng, fakeLastNames)

	phone := "06"
	for i := 0; i < 8; i++ {
		phone += fmt.Sprintf("%d", rng.IntN(10))
	}

	return fakeContact{
		TeacherName: first + " " + last,
		PhoneNumber: phone,
		Email:       strings.ToLower(first) + "." + strings.ToLower(last) + "@ecole-fictive.fr",
	}
}
