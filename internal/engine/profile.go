package engine

import "strings"

// ResolveProfiles derives the set of applicable profile tags from a family
// roster. The result is a union over all members, so it is idempotent and
// independent of roster order. An empty roster yields an empty set, which the
// scorer treats as "no restrictions apply".
func ResolveProfiles(members []Member) ProfileSet {
	profiles := make(ProfileSet)

	for _, m := range members {
		switch m.Type {
		case MemberToddler:
			// Toddlers carry every child-relevant restriction as well.
			profiles["toddler"] = true
			profiles["child"] = true
		case MemberChild:
			profiles["child"] = true
		case MemberPregnant:
			profiles["pregnant"] = true
			profiles["adult"] = true
		case MemberSenior:
			profiles["senior"] = true
		case MemberAdult:
			profiles["adult"] = true
		}

		for _, cond := range m.Conditions {
			for _, tag := range conditionTags(cond) {
				profiles[tag] = true
			}
		}

		for _, allergy := range m.Allergies {
			tag := strings.ToLower(strings.TrimSpace(allergy))
			if tag != "" {
				profiles[tag] = true
			}
		}
	}

	return profiles
}

// conditionTags maps a declared condition to its profile tags. Cardiac
// patients inherit the hypertensive tag: the two risks travel together
// clinically.
func conditionTags(condition string) []string {
	switch normalizeCondition(condition) {
	case "cardiac":
		return []string{"cardiac", "hypertensive"}
	case "hypertensive":
		return []string{"hypertensive"}
	case "diabetic":
		return []string{"diabetic"}
	case "obesity":
		return []string{"obesity"}
	case "celiac":
		return []string{"celiac"}
	case "lactoseintolerant", "lactose_intolerant":
		return []string{"lactose_intolerant"}
	case "":
		return nil
	default:
		return []string{normalizeCondition(condition)}
	}
}

func normalizeCondition(condition string) string {
	return strings.ToLower(strings.TrimSpace(condition))
}
