package keyword

const (
	MapLengthMetricName       = "sharded_map_length"
	MapShardFillMinMetricName = "sharded_map_shard_fill_min"
	MapShardFillMaxMetricName = "sharded_map_shard_fill_max"
	MapEmplaceTotalMetricName = "sharded_map_emplace_total"
	MapFindTotalMetricName    = "sharded_map_find_total"
	MapEraseTotalMetricName   = "sharded_map_erase_total"
)
