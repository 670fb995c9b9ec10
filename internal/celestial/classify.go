package celestial

// ClassFromTemp maps a surface temperature (K) to its spectral class.
// A value equal to a class's lower bound belongs to that (hotter) class;
// anything below K's floor is M.
func ClassFromTemp(temp float64) StarClass {
	return classify(temp, func(ci ClassInfo) float64 { return ci.Temp.Min })
}

// ClassFromDiameter maps a diameter (km) to its spectral class via the ratio
// to the Sun's diameter, using the same ordering as ClassFromTemp.
func ClassFromDiameter(diameter float64) StarClass {
	ratio := diameter / Sun.Diameter
	return classify(ratio, func(ci ClassInfo) float64 { return ci.Diameter.Min })
}

// classify walks the table hottest first and returns the first class whose
// lower bound is <= v. M is the catch-all.
func classify(v float64, lower func(ClassInfo) float64) StarClass {
	for _, c := range StarClasses[:len(StarClasses)-1] {
		if v >= lower(classTable[c]) {
			return c
		}
	}
	return ClassM
}
