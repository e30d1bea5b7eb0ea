// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: business/v1/business.proto

package businessv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type BusinessProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BusinessId    string                 `protobuf:"bytes,1,opt,name=business_id,json=businessId,proto3" json:"business_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BusinessProfileRequest) Reset() {
	*x = BusinessProfileRequest{}
	mi := &file_business_v1_business_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BusinessProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BusinessProfileRequest) ProtoMessage() {}

func (x *BusinessProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_business_v1_business_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BusinessProfileRequest.ProtoReflect.Descriptor instead.
func (*BusinessProfileRequest) Descriptor() ([]byte, []int) {
	return file_business_v1_business_proto_rawDescGZIP(), []int{0}
}

func (x *BusinessProfileRequest) GetBusinessId() string {
	if x != nil {
		return x.BusinessId
	}
	return ""
}

type ReminderPolicy struct {
	state                  protoimpl.MessageState `protogen:"open.v1"`
	ReminderOffsetsMinutes []int32                `protobuf:"varint,1,rep,packed,name=reminder_offsets_minutes,json=reminderOffsetsMinutes,proto3" json:"reminder_offsets_minutes,omitempty"`
	Timezone               string                 `protobuf:"bytes,2,opt,name=timezone,proto3" json:"timezone,omitempty"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *ReminderPolicy) Reset() {
	*x = ReminderPolicy{}
	mi := &file_business_v1_business_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReminderPolicy) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReminderPolicy) ProtoMessage() {}

func (x *ReminderPolicy) ProtoReflect() protoreflect.Message {
	mi := &file_business_v1_business_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReminderPolicy.ProtoReflect.Descriptor instead.
func (*ReminderPolicy) Descriptor() ([]byte, []int) {
	return file_business_v1_business_proto_rawDescGZIP(), []int{1}
}

func (x *ReminderPolicy) GetReminderOffsetsMinutes() []int32 {
	if x != nil {
		return x.ReminderOffsetsMinutes
	}
	return nil
}

func (x *ReminderPolicy) GetTimezone() string {
	if x != nil {
		return x.Timezone
	}
	return ""
}

type BusinessProfileResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	BusinessId     string                 `protobuf:"bytes,1,opt,name=business_id,json=businessId,proto3" json:"business_id,omitempty"`
	Name           string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	ReminderPolicy *ReminderPolicy        `protobuf:"bytes,3,opt,name=reminder_policy,json=reminderPolicy,proto3" json:"reminder_policy,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *BusinessProfileResponse) Reset() {
	*x = BusinessProfileResponse{}
	mi := &file_business_v1_business_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BusinessProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BusinessProfileResponse) ProtoMessage() {}

func (x *BusinessProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_business_v1_business_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BusinessProfileResponse.ProtoReflect.Descriptor instead.
func (*BusinessProfileResponse) Descriptor() ([]byte, []int) {
	return file_business_v1_business_proto_rawDescGZIP(), []int{2}
}

func (x *BusinessProfileResponse) GetBusinessId() string {
	if x != nil {
		return x.BusinessId
	}
	return ""
}

func (x *BusinessProfileResponse) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *BusinessProfileResponse) GetReminderPolicy() *ReminderPolicy {
	if x != nil {
		return x.ReminderPolicy
	}
	return nil
}

type AvailabilityConfigRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	BusinessId string                 `protobuf:"bytes,1,opt,name=business_id,json=businessId,proto3" json:"business_id,omitempty"`
	StaffId    string                 `protobuf:"bytes,2,opt,name=staff_id,json=staffId,proto3" json:"staff_id,omitempty"`
	ServiceId  string                 `protobuf:"bytes,3,opt,name=service_id,json=serviceId,proto3" json:"service_id,omitempty"`
	// Calendar day, YYYY-MM-DD.
	Date          string `protobuf:"bytes,4,opt,name=date,proto3" json:"date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AvailabilityConfigRequest) Reset() {
	*x = AvailabilityConfigRequest{}
	mi := &file_business_v1_business_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AvailabilityConfigRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AvailabilityConfigRequest) ProtoMessage() {}

func (x *AvailabilityConfigRequest) ProtoReflect() protoreflect.Message {
	mi := &file_business_v1_business_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AvailabilityConfigRequest.ProtoReflect.Descriptor instead.
func (*AvailabilityConfigRequest) Descriptor() ([]byte, []int) {
	return file_business_v1_business_proto_rawDescGZIP(), []int{3}
}

func (x *AvailabilityConfigRequest) GetBusinessId() string {
	if x != nil {
		return x.BusinessId
	}
	return ""
}

func (x *AvailabilityConfigRequest) GetStaffId() string {
	if x != nil {
		return x.StaffId
	}
	return ""
}

func (x *AvailabilityConfigRequest) GetServiceId() string {
	if x != nil {
		return x.ServiceId
	}
	return ""
}

func (x *AvailabilityConfigRequest) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

// Minutes are offsets from midnight on the requested day. A closed day or a
// weekday without configured hours reports is_open = false.
type AvailabilityConfigResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	BusinessId      string                 `protobuf:"bytes,1,opt,name=business_id,json=businessId,proto3" json:"business_id,omitempty"`
	StaffId         string                 `protobuf:"bytes,2,opt,name=staff_id,json=staffId,proto3" json:"staff_id,omitempty"`
	ServiceId       string                 `protobuf:"bytes,3,opt,name=service_id,json=serviceId,proto3" json:"service_id,omitempty"`
	IsOpen          bool                   `protobuf:"varint,4,opt,name=is_open,json=isOpen,proto3" json:"is_open,omitempty"`
	OpenMinute      int32                  `protobuf:"varint,5,opt,name=open_minute,json=openMinute,proto3" json:"open_minute,omitempty"`
	CloseMinute     int32                  `protobuf:"varint,6,opt,name=close_minute,json=closeMinute,proto3" json:"close_minute,omitempty"`
	DurationMinutes int32                  `protobuf:"varint,7,opt,name=duration_minutes,json=durationMinutes,proto3" json:"duration_minutes,omitempty"`
	SlotStepMinutes int32                  `protobuf:"varint,8,opt,name=slot_step_minutes,json=slotStepMinutes,proto3" json:"slot_step_minutes,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *AvailabilityConfigResponse) Reset() {
	*x = AvailabilityConfigResponse{}
	mi := &file_business_v1_business_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AvailabilityConfigResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AvailabilityConfigResponse) ProtoMessage() {}

func (x *AvailabilityConfigResponse) ProtoReflect() protoreflect.Message {
	mi := &file_business_v1_business_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AvailabilityConfigResponse.ProtoReflect.Descriptor instead.
func (*AvailabilityConfigResponse) Descriptor() ([]byte, []int) {
	return file_business_v1_business_proto_rawDescGZIP(), []int{4}
}

func (x *AvailabilityConfigResponse) GetBusinessId() string {
	if x != nil {
		return x.BusinessId
	}
	return ""
}

func (x *AvailabilityConfigResponse) GetStaffId() string {
	if x != nil {
		return x.StaffId
	}
	return ""
}

func (x *AvailabilityConfigResponse) GetServiceId() string {
	if x != nil {
		return x.ServiceId
	}
	return ""
}

func (x *AvailabilityConfigResponse) GetIsOpen() bool {
	if x != nil {
		return x.IsOpen
	}
	return false
}

func (x *AvailabilityConfigResponse) GetOpenMinute() int32 {
	if x != nil {
		return x.OpenMinute
	}
	return 0
}

func (x *AvailabilityConfigResponse) GetCloseMinute() int32 {
	if x != nil {
		return x.CloseMinute
	}
	return 0
}

func (x *AvailabilityConfigResponse) GetDurationMinutes() int32 {
	if x != nil {
		return x.DurationMinutes
	}
	return 0
}

func (x *AvailabilityConfigResponse) GetSlotStepMinutes() int32 {
	if x != nil {
		return x.SlotStepMinutes
	}
	return 0
}

var File_business_v1_business_proto protoreflect.FileDescriptor

const file_business_v1_business_proto_rawDesc = "" +
	"\n" +
	"\x1abusiness/v1/business.proto\x12\vbusiness.v1\"9\n" +
	"\x16BusinessProfileRequest\x12\x1f\n" +
	"\vbusiness_id\x18\x01 \x01(\tR\n" +
	"businessId\"f\n" +
	"\x0eReminderPolicy\x128\n" +
	"\x18reminder_offsets_minutes\x18\x01 \x03(\x05R\x16reminderOffsetsMinutes\x12\x1a\n" +
	"\btimezone\x18\x02 \x01(\tR\btimezone\"\x94\x01\n" +
	"\x17BusinessProfileResponse\x12\x1f\n" +
	"\vbusiness_id\x18\x01 \x01(\tR\n" +
	"businessId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12D\n" +
	"\x0freminder_policy\x18\x03 \x01(\v2\x1b.business.v1.ReminderPolicyR\x0ereminderPolicy\"\x8a\x01\n" +
	"\x19AvailabilityConfigRequest\x12\x1f\n" +
	"\vbusiness_id\x18\x01 \x01(\tR\n" +
	"businessId\x12\x19\n" +
	"\bstaff_id\x18\x02 \x01(\tR\astaffId\x12\x1d\n" +
	"\n" +
	"service_id\x18\x03 \x01(\tR\tserviceId\x12\x12\n" +
	"\x04date\x18\x04 \x01(\tR\x04date\"\xab\x02\n" +
	"\x1aAvailabilityConfigResponse\x12\x1f\n" +
	"\vbusiness_id\x18\x01 \x01(\tR\n" +
	"businessId\x12\x19\n" +
	"\bstaff_id\x18\x02 \x01(\tR\astaffId\x12\x1d\n" +
	"\n" +
	"service_id\x18\x03 \x01(\tR\tserviceId\x12\x17\n" +
	"\ais_open\x18\x04 \x01(\bR\x06isOpen\x12\x1f\n" +
	"\vopen_minute\x18\x05 \x01(\x05R\n" +
	"openMinute\x12!\n" +
	"\fclose_minute\x18\x06 \x01(\x05R\vcloseMinute\x12)\n" +
	"\x10duration_minutes\x18\a \x01(\x05R\x0fdurationMinutes\x12*\n" +
	"\x11slot_step_minutes\x18\b \x01(\x05R\x0fslotStepMinutes2\xdc\x01\n" +
	"\x0fBusinessService\x12_\n" +
	"\x12GetBusinessProfile\x12#.business.v1.BusinessProfileRequest\x1a$.business.v1.BusinessProfileResponse\x12h\n" +
	"\x15GetAvailabilityConfig\x12&.business.v1.AvailabilityConfigRequest\x1a'.business.v1.AvailabilityConfigResponseBDZBgithub.com/pberardi-dev/slotwise/protos/gen/business/v1;businessv1b\x06proto3"

var (
	file_business_v1_business_proto_rawDescOnce sync.Once
	file_business_v1_business_proto_rawDescData []byte
)

func file_business_v1_business_proto_rawDescGZIP() []byte {
	file_business_v1_business_proto_rawDescOnce.Do(func() {
		file_business_v1_business_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_business_v1_business_proto_rawDesc), len(file_business_v1_business_proto_rawDesc)))
	})
	return file_business_v1_business_proto_rawDescData
}

var file_business_v1_business_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_business_v1_business_proto_goTypes = []any{
	(*BusinessProfileRequest)(nil),     // 0: business.v1.BusinessProfileRequest
	(*ReminderPolicy)(nil),             // 1: business.v1.ReminderPolicy
	(*BusinessProfileResponse)(nil),    // 2: business.v1.BusinessProfileResponse
	(*AvailabilityConfigRequest)(nil),  // 3: business.v1.AvailabilityConfigRequest
	(*AvailabilityConfigResponse)(nil), // 4: business.v1.AvailabilityConfigResponse
}
var file_business_v1_business_proto_depIdxs = []int32{
	1, // 0: business.v1.BusinessProfileResponse.reminder_policy:type_name -> business.v1.ReminderPolicy
	0, // 1: business.v1.BusinessService.GetBusinessProfile:input_type -> business.v1.BusinessProfileRequest
	3, // 2: business.v1.BusinessService.GetAvailabilityConfig:input_type -> business.v1.AvailabilityConfigRequest
	2, // 3: business.v1.BusinessService.GetBusinessProfile:output_type -> business.v1.BusinessProfileResponse
	4, // 4: business.v1.BusinessService.GetAvailabilityConfig:output_type -> business.v1.AvailabilityConfigResponse
	3, // [3:5] is the sub-list for method output_type
	1, // [1:3] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_business_v1_business_proto_init() }
func file_business_v1_business_proto_init() {
	if File_business_v1_business_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_business_v1_business_proto_rawDesc), len(file_business_v1_business_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_business_v1_business_proto_goTypes,
		DependencyIndexes: file_business_v1_business_proto_depIdxs,
		MessageInfos:      file_business_v1_business_proto_msgTypes,
	}.Build()
	File_business_v1_business_proto = out.File
	file_business_v1_business_proto_goTypes = nil
	file_business_v1_business_proto_depIdxs = nil
}
