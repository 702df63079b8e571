package config

import (
	"github.com/MKhiriev/go-bank-validator/internal/logger"
	"github.com/MKhiriev/go-bank-validator/models"
	"github.com/joho/godotenv"
)

// RegionsPropertyKey is the key looked up in the properties-style regions
// file.
const RegionsPropertyKey = "BANK_VALID_REGIONS"

// LoadRegionSet resolves the branch region whitelist. The first usable
// source wins:
//  1. rules.Regions
//  2. RegionsPropertyKey in rules.RegionsFile
//  3. models.DefaultRegionSet
//
// Missing or malformed sources are logged and skipped, so LoadRegionSet
// always returns a usable set.
func LoadRegionSet(rules Rules, log *logger.Logger) models.RegionSet {
	if rules.Regions != "" {
		regions, err := models.ParseRegionSet(rules.Regions)
		if err == nil {
			log.Debug().Str("regions", regions.String()).Str("source", "config").Msg("loaded branch regions")
			return regions
		}
		log.Warn().Err(err).Str("raw", rules.Regions).Msg("ignoring configured regions")
	}

	if rules.RegionsFile != "" {
		regions, err := readRegionsFile(rules.RegionsFile)
		if err == nil {
			log.Debug().Str("regions", regions.String()).Str("source", rules.RegionsFile).Msg("loaded branch regions")
			return regions
		}
		log.Warn().Err(err).Str("file", rules.RegionsFile).Msg("ignoring regions file")
	}

	regions := models.DefaultRegionSet()
	log.Info().Str("regions", regions.String()).Msg("using default branch regions")
	return regions
}

func readRegionsFile(path string) (models.RegionSet, error) {
	props, err := godotenv.Read(path)
	if err != nil {
		return models.RegionSet{}, err
	}

	return models.ParseRegionSet(props[RegionsPropertyKey])
}

// LocalRegionSet loads the whitelist for in-process validation. A remote
// client validates on the server, so nothing is loaded or logged and the
// empty set is returned.
func (cfg *ClientConfig) LocalRegionSet(log *logger.Logger) models.RegionSet {
	if cfg.Remote() {
		return models.RegionSet{}
	}
	return LoadRegionSet(cfg.Rules, log)
}
