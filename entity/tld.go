package entity

import "strings"

// tldList is the whitespace separated list of the top-level domains recognized in the headless links.
// Internationalized domains are not here, since headless links accept ASCII only.
const tldList = `
com net org edu gov mil int arpa info biz name pro aero asia cat coop jobs mobi museum post tel travel xxx

ac ad ae af ag ai al am ao aq ar as at au aw ax az
ba bb bd be bf bg bh bi bj bm bn bo bq br bs bt bw by bz
ca cc cd cf cg ch ci ck cl cm cn co cr cu cv cw cx cy cz
de dj dk dm do dz
ec ee eg er es et eu
fi fj fk fm fo fr
ga gb gd ge gf gg gh gi gl gm gn gp gq gr gs gt gu gw gy
hk hm hn hr ht hu
id ie il im in io iq ir is it
je jm jo jp
ke kg kh ki km kn kp kr kw ky kz
la lb lc li lk lr ls lt lu lv ly
ma mc md me mg mh mk ml mm mn mo mp mq mr ms mt mu mv mw mx my mz
na nc ne nf ng ni nl no np nr nu nz
om
pa pe pf pg ph pk pl pm pn pr ps pt pw py
qa
re ro rs ru rw
sa sb sc sd se sg sh si sk sl sm sn so sr ss st su sv sx sy sz
tc td tf tg th tj tk tl tm tn to tr tt tv tw tz
ua ug uk us uy uz
va vc ve vg vi vn vu
wf ws
ye yt
za zm zw

academy accountant accountants actor ads adult agency airforce alsace amsterdam analytics apartments app
archi army art associates attorney auction audio auto autos baby band bank bar barcelona bargains
basketball bayern beauty beer berlin best bet bible bid bike bingo bio black blackfriday blog blue
boats bond boo book boston boutique box broker brussels build builders business buzz cab cafe cam
camera camp capital car cards care career careers cars casa cash casino catering center ceo charity
chat cheap christmas church city claims cleaning click clinic clothing cloud club coach codes coffee
college cologne community company compare computer condos construction consulting contact contractors
cooking cool country coupons courses credit creditcard cricket cruises cyou dad dance data date dating
day deals degree delivery democrat dental dentist design dev diamonds diet digital direct directory
discount doctor dog domains download earth eco education email energy engineer engineering enterprises
equipment esq estate events exchange expert exposed express fail faith family fan fans farm fashion
film finance financial fish fishing fit fitness flights florist flowers fm foo food football forex forsale
forum foundation free fun fund furniture futbol fyi gallery game games garden gay gdn gift gifts gives
glass global gmbh gold golf graphics gratis green gripe group guide guitars guru hair hamburg haus health
healthcare help hiphop hockey holdings holiday homes horse hospital host hosting house how icu immo
immobilien inc industries ink institute insure international investments irish jetzt jewelry juegos
kaufen kim kitchen kiwi land lat law lawyer lease legal lgbt life lighting limited limo link live llc
loan loans lol london love ltd luxe luxury maison management market marketing markets mba media memorial
men menu miami moda moe mom money monster mortgage movie music navy network new news nexus ninja nyc
one onl online ooo organic page paris partners parts party pet phd photo photography photos pics pictures
pink pizza place plumbing plus poker porn press productions prof promo properties property pub quest
racing radio realestate realty recipes red rehab reise reisen rent rentals repair report republican rest
restaurant review reviews rich rip rocks rodeo run sale salon sarl school schule science security select
services sex sexy shiksha shoes shop shopping show singles site ski skin soccer social software solar
solutions space spa sport store stream studio study style sucks supplies supply support surf surgery
sydney systems talk tattoo tax taxi team tech technology tennis theater tickets tienda tips tires today
tokyo tools top tours town toys trade trading training tube university uno vacations vegas ventures vet
viajes video villas vin vip vision vodka vote voting voto voyage wales wang watch webcam website wedding
wiki win wine work works world wtf xyz yoga you zone zip mov
`

// domainTable is the read-only set of lowercased top-level domains.
var domainTable = func() map[string]struct{} {
	fields := strings.Fields(tldList)
	m := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		m[f] = struct{}{}
	}
	return m
}()

// IsTLD reports whether the name is a known top-level domain. The check is case-insensitive.
func IsTLD(name string) bool {
	if name == "" {
		return false
	}

	// avoiding allocation for the most common, already lowercased case
	if _, ok := domainTable[name]; ok {
		return true
	}

	_, ok := domainTable[strings.ToLower(name)]
	return ok
}

// leadingLetters returns the longest prefix of s which consists of ASCII letters only.
func leadingLetters(s string) string {
	for i, c := range s {
		if !isASCIIAlpha(c) {
			return s[:i]
		}
	}
	return s
}
