package wttr

import "strings"

// City pairs the wttr.in query name with the Russian prepositional form
// used in user-facing text ("погода в Москве").
type City struct {
	Query  string
	NameRu string
}

// DefaultCity is used when no known city is mentioned in the query.
var DefaultCity = City{Query: "Moscow", NameRu: "Москве"}

type cityAlias struct {
	alias string
	city  City
}

// cityAliases maps lowercase mentions to cities, longest alias first so
// that "томск" never matches the "омск" entry. Declension variants share
// an entry with the nominative form.
var cityAliases = []cityAlias{
	{"санкт-петербург", City{Query: "Saint Petersburg", NameRu: "Санкт-Петербурге"}},
	{"екатеринбург", City{Query: "Yekaterinburg", NameRu: "Екатеринбурге"}},
	{"новосибирск", City{Query: "Novosibirsk", NameRu: "Новосибирске"}},
	{"владивосток", City{Query: "Vladivostok", NameRu: "Владивостоке"}},
	{"красноярск", City{Query: "Krasnoyarsk", NameRu: "Красноярске"}},
	{"волгоград", City{Query: "Volgograd", NameRu: "Волгограде"}},
	{"краснодар", City{Query: "Krasnodar", NameRu: "Краснодаре"}},
	{"хабаровск", City{Query: "Khabarovsk", NameRu: "Хабаровске"}},
	{"мурманск", City{Query: "Murmansk", NameRu: "Мурманске"}},
	{"воронеж", City{Query: "Voronezh", NameRu: "Воронеже"}},
	{"иркутск", City{Query: "Irkutsk", NameRu: "Иркутске"}},
	{"саратов", City{Query: "Saratov", NameRu: "Саратове"}},
	{"якутск", City{Query: "Yakutsk", NameRu: "Якутске"}},
	{"ростов", City{Query: "Rostov-on-Don", NameRu: "Ростове-на-Дону"}},
	{"самара", City{Query: "Samara", NameRu: "Самаре"}},
	{"москва", City{Query: "Moscow", NameRu: "Москве"}},
	{"москве", City{Query: "Moscow", NameRu: "Москве"}},
	{"moscow", City{Query: "Moscow", NameRu: "Москве"}},
	{"казань", City{Query: "Kazan", NameRu: "Казани"}},
	{"казани", City{Query: "Kazan", NameRu: "Казани"}},
	{"питер", City{Query: "Saint Petersburg", NameRu: "Санкт-Петербурге"}},
	{"пермь", City{Query: "Perm", NameRu: "Перми"}},
	{"томск", City{Query: "Tomsk", NameRu: "Томске"}},
	{"сочи", City{Query: "Sochi", NameRu: "Сочи"}},
	{"омск", City{Query: "Omsk", NameRu: "Омске"}},
	{"спб", City{Query: "Saint Petersburg", NameRu: "Санкт-Петербурге"}},
	{"уфа", City{Query: "Ufa", NameRu: "Уфе"}},
}

// ExtractCity scans a weather query for a known city mention.
// Falls back to DefaultCity when nothing matches.
func ExtractCity(query string) City {
	lower := strings.ToLower(query)
	for _, entry := range cityAliases {
		if strings.Contains(lower, entry.alias) {
			return entry.city
		}
	}
	return DefaultCity
}
