package refdata

// German federal states. Order is fixed; generation picks by index.
var states = []string{
	"Baden-Württemberg", "Bayern", "Berlin", "Brandenburg", "Bremen", "Hamburg",
	"Hessen", "Niedersachsen", "Mecklenburg-Vorpommern", "Nordrhein-Westfalen",
	"Rheinland-Pfalz", "Saarland", "Sachsen", "Sachsen-Anhalt",
	"Schleswig-Holstein", "Thüringen",
}

// ZIP code ranges per state, inclusive bounds. Sachsen is the only state
// with two disjoint ranges (Dresden/Chemnitz and Leipzig/Zwickau areas).
var zipRanges = map[string][]ZipRange{
	"Baden-Württemberg":      {{70000, 79999}},
	"Bayern":                 {{80000, 99999}},
	"Berlin":                 {{10000, 19999}},
	"Brandenburg":            {{14000, 14999}},
	"Bremen":                 {{28000, 28999}},
	"Hamburg":                {{20000, 29999}},
	"Hessen":                 {{60000, 69999}},
	"Niedersachsen":          {{26000, 29999}},
	"Mecklenburg-Vorpommern": {{17000, 17999}},
	"Nordrhein-Westfalen":    {{40000, 49999}},
	"Rheinland-Pfalz":        {{55000, 59999}},
	"Saarland":               {{66000, 66999}},
	"Sachsen":                {{1000, 1999}, {4000, 4999}},
	"Sachsen-Anhalt":         {{39000, 39999}},
	"Schleswig-Holstein":     {{24000, 25999}},
	"Thüringen":              {{99000, 99999}},
}

var firstNamesMale = []string{
	"Lukas", "Max", "Paul", "Jonas", "Leon", "Felix", "Finn", "Ben", "Moritz",
	"Noah", "Johannes", "Tim", "Julian", "David", "Matthias", "Niklas", "Elias",
	"Alexander", "Tobias", "Samuel", "Lucas", "Jakob", "Fabian", "Andreas",
	"Markus", "Christian", "Stefan", "Simon", "Benjamin", "Daniel", "Michael",
	"Johann", "Mark", "Kai", "Martin", "Tom", "Nico", "Patrick", "Sebastian",
	"Bastian", "Hannes", "Rafael", "Georg", "Arthur", "Lennard", "Oskar", "Jan",
	"Maurice", "Timothy",
}

var firstNamesFemale = []string{
	"Anna", "Sophie", "Marie", "Emma", "Lena", "Laura", "Mia", "Hannah", "Lina",
	"Lea", "Sarah", "Charlotte", "Clara", "Amelie", "Lilli", "Emily", "Nina",
	"Ella", "Katharina", "Isabella", "Julia", "Lisa", "Franziska", "Marlene",
	"Greta", "Eva", "Luisa", "Paula", "Johanna", "Carla", "Leonie", "Lara",
	"Alina", "Klara", "Victoria", "Elena", "Sina", "Merle", "Maja", "Selina",
	"Antonia", "Tessa", "Nadine", "Isabel", "Vanessa", "Daniela", "Verena",
	"Bettina", "Jana", "Maike", "Melanie",
}

var lastNames = []string{
	"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner",
	"Becker", "Hoffmann", "Schulz", "Bauer", "Koch", "Richter", "Klein", "Wolf",
	"Schröder", "Neumann", "Schwarz", "Zimmermann", "Braun", "Schmitt",
	"Hartmann", "Lange", "Werner", "Krause", "Peters", "Jung", "Roth", "Voigt",
	"Berger", "Mayer", "Fuchs", "Schulte", "Böhm", "Weiss", "Bergmann", "Kraus",
	"Vogel", "Lang", "Ziegler", "Sauer", "Weidner", "Meyerhoff", "Weigel",
	"Wirth", "Krämer", "Röder", "Heinrich", "Hahn", "Böttcher", "Schulze",
}

var emailProviders = []string{
	"gmx.de", "web.de", "t-online.de", "yahoo.de", "freenet.de", "aol.de",
	"mail.de", "tutanota.de", "hotmail.de", "outlook.de", "1und1.de",
	"posteo.de", "googlemail.com", "mailbox.org", "arcor.de", "gmx.net",
	"freemail.de", "bluewin.ch", "uni-mail.de", "gmx.at", "gmx.ch", "email.de",
	"versatel.de", "gmx.us", "gmx.co.uk", "gmx.fr", "iserv.de", "gmx.org",
	"mail.ru", "eclipso.de", "freenetmail.de", "surfmail.de", "posteo.net",
}

// Coordinates of major German cities. Cities outside this table resolve to
// the national centroid.
var cityCoords = map[string]Coord{
	"Berlin":     {52.5200, 13.4050},
	"München":    {48.1351, 11.5820},
	"Hamburg":    {53.5511, 9.9937},
	"Köln":       {50.9375, 6.9603},
	"Frankfurt":  {50.1109, 8.6821},
	"Stuttgart":  {48.7758, 9.1829},
	"Düsseldorf": {51.2217, 6.7762},
	"Dortmund":   {51.5145, 7.4660},
	"Essen":      {51.4556, 7.0116},
	"Leipzig":    {51.3397, 12.3731},
	"Bremen":     {53.0793, 8.8017},
	"Dresden":    {51.0504, 13.7373},
	"Hannover":   {52.3792, 9.7196},
	"Nürnberg":   {49.4521, 11.0767},
	"Duisburg":   {51.4344, 6.7623},
	"Bochum":     {51.4818, 7.2162},
	"Wuppertal":  {51.2562, 7.1500},
	"Bielefeld":  {52.0302, 8.5325},
	"Münster":    {51.9607, 7.6261},
	"Mannheim":   {49.4875, 8.4671},
	"Karlsruhe":  {49.0141, 8.4044},
}

// Display cities for addresses. Drawn independently of the state, so the
// exported address can pair a ZIP from one state with a city from another.
// Downstream consumers depend on that behavior; do not "fix" it here.
var cities = []string{
	"Berlin", "München", "Hamburg", "Köln", "Frankfurt", "Stuttgart",
	"Düsseldorf", "Dortmund", "Essen", "Leipzig", "Bremen", "Dresden",
	"Hannover", "Nürnberg", "Duisburg", "Bochum", "Wuppertal", "Bielefeld",
	"Münster", "Mannheim", "Karlsruhe", "Augsburg", "Kiel", "Rostock", "Mainz",
	"Erfurt", "Potsdam", "Freiburg", "Heidelberg", "Regensburg", "Würzburg",
	"Kassel", "Lübeck", "Bonn", "Aachen", "Wiesbaden", "Saarbrücken",
	"Magdeburg", "Oldenburg", "Bamberg",
}

var streetNames = []string{
	"Haupt", "Garten", "Bahnhof", "Schul", "Kirch", "Berg", "Wald", "Linden",
	"Birken", "Eichen", "Rosen", "Mühlen", "Brunnen", "Feld", "Wiesen", "Markt",
	"Post", "Schiller", "Goethe", "Mozart", "Beethoven", "Kant", "Lessing",
	"Jahn", "Ufer",
}

var streetSuffixes = []string{
	"straße", "weg", "allee", "gasse", "platz", "ring",
}

var purchaseItems = []string{
	"Hose", "T-Shirt", "Socken", "Jacke", "Schuhe", "Kleid", "Bluse", "Rock",
	"Pullover", "Jeans", "Shorts", "Mantel", "Anzug", "Mütze", "Schal",
	"Handschuhe", "Unterwäsche", "Badeanzug", "Jogginghose", "Hemd",
	"Polo-Shirt", "Top", "Pyjama", "Bikini", "Weste", "Leggings", "Poncho",
	"Strickjacke", "Overall", "Trainingsanzug", "Stirnband", "Strumpfhose",
	"Sandalen", "Stiefel", "Sneaker", "Pumps", "Slipper", "Cargohose",
	"Blazer", "Cardigan", "Gürtel", "Krawatte", "Fliege", "Latzhose",
	"Dirndl", "Halstuch", "Regenjacke", "Regenhose", "Wanderstiefel",
	"Kapuzenpullover", "Chinos", "Cargo-Shorts", "Pufferjacke", "Loafers",
	"Espadrilles", "Flip-Flops", "Hausschuhe", "Boxershorts", "Tanktop",
	"Badehose", "Radlerhose", "Sonnenhut", "Haarband", "Schnürschuhe",
	"Abendkleid", "Ballkleid", "Ballerinas", "Mokassins", "Zehensandalen",
	"Segelschuhe", "Plateauschuhe", "Clogs", "Chelseaboots", "Brogues",
	"Halbschuhe", "Oxfordschuhe", "Laufschuhe", "Sport-BH", "Funktionsshirt",
}
